// Package derive implements the pure derivation pipeline that turns a
// raw partner record into display attributes: categories, distance to
// the reference location, domain and logo candidates, founding year,
// and a completeness report. All functions are side-effect free and
// read only their arguments and the static tables in this package.
package derive

import "github.com/hda-infdl/partner-scout/internal/model"

// Alias lists resolve one logical attribute from the inconsistent
// upstream schema. Order is priority order: the first key with a
// non-empty value wins. Alias lists are data, not code, so new
// synonyms are a one-line change.
var (
	websiteAliases = []string{
		"applicant_website",
		"application_website",
		"careerUrl",
		"applicationUrl",
		"website",
		"url",
		"homepage",
	}

	contactPersonAliases = []string{
		"applicant_contact",
		"contactPerson",
		"ansprechpartner",
		"contact_person",
		"contactName",
	}

	contactTitleAliases = []string{
		"contactTitle",
		"anrede",
		"contact_title",
		"title",
	}

	phoneAliases = []string{
		"applicant_phone",
		"phone",
		"telefon",
		"telephone",
		"phoneNumber",
		"tel",
	}

	emailAliases = []string{
		"applicant_email_display",
		"applicant_email",
		"email",
		"mail",
		"contactEmail",
		"contact_email",
		"e_mail",
	}

	trainingLocationAliases = []string{
		"trainingLocation",
		"ausbildungsort",
		"training_location",
		"location",
	}
)

// Resolve returns the value of the first alias whose value is present
// and non-empty. Absence is a valid terminal result, never a failure.
func Resolve(r model.RawCompany, aliases []string) string {
	for _, key := range aliases {
		if v := r.Str(key); v != "" {
			return v
		}
	}
	return ""
}

// Website returns the best website-like URL for the company.
func Website(r model.RawCompany) string { return Resolve(r, websiteAliases) }

// ContactPerson returns the resolved contact person name.
func ContactPerson(r model.RawCompany) string { return Resolve(r, contactPersonAliases) }

// ContactTitle returns the resolved contact salutation or title.
func ContactTitle(r model.RawCompany) string { return Resolve(r, contactTitleAliases) }

// Phone returns the resolved phone number.
func Phone(r model.RawCompany) string { return Resolve(r, phoneAliases) }

// Email returns the resolved email address.
func Email(r model.RawCompany) string { return Resolve(r, emailAliases) }

// TrainingLocation returns the resolved training location.
func TrainingLocation(r model.RawCompany) string { return Resolve(r, trainingLocationAliases) }

// City returns the effective city: the first address entry wins over
// the top-level field.
func City(r model.RawCompany) string {
	if a, ok := r.FirstAddress(); ok && a.City != "" {
		return a.City
	}
	return r.Str("city")
}

// Street returns the effective street, address list first.
func Street(r model.RawCompany) string {
	if a, ok := r.FirstAddress(); ok && a.Street != "" {
		return a.Street
	}
	return r.Str("street")
}

// Zip returns the effective postal code, address list first.
func Zip(r model.RawCompany) string {
	if a, ok := r.FirstAddress(); ok && a.Zip != "" {
		return a.Zip
	}
	return r.Str("zipCode")
}

// Country returns the effective country, address list first.
func Country(r model.RawCompany) string {
	if a, ok := r.FirstAddress(); ok && a.Country != "" {
		return a.Country
	}
	return r.Str("country")
}

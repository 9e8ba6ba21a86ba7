package derive

import "github.com/hda-infdl/partner-scout/internal/model"

// Missing-information labels, in the stable order they are reported.
const (
	MissingLocation = "Standort"
	MissingWebsite  = "Webseite"
	MissingContact  = "Kontakt"
)

// MissingInfo reports which display essentials are absent from a
// record. Standort is missing when neither city nor street resolves;
// Webseite when no website alias resolves; Kontakt when contact
// person, email, and phone are all absent. Order is always Standort,
// Webseite, Kontakt.
func MissingInfo(r model.RawCompany) []string {
	var missing []string

	if City(r) == "" && Street(r) == "" {
		missing = append(missing, MissingLocation)
	}
	if Website(r) == "" {
		missing = append(missing, MissingWebsite)
	}
	if ContactPerson(r) == "" && Email(r) == "" && Phone(r) == "" {
		missing = append(missing, MissingContact)
	}

	return missing
}

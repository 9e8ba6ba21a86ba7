package derive

import (
	"strings"

	"github.com/hda-infdl/partner-scout/internal/model"
)

// FallbackCategory labels companies no keyword rule matches.
const FallbackCategory = "Sonstige"

type categoryRule struct {
	name     string
	keywords []string
}

// categoryRules map a category to name keywords. Matching is
// substring-based, not word-boundary based: "bank" matches "bankfurt"
// too. That is an accepted approximation; tightening it would
// reassign categories for existing data. Declaration order is the
// order categories appear in the result.
var categoryRules = []categoryRule{
	{"IT", []string{"telekom", "software", "digital", "tech", "data", "cyber", "cloud", "internet", "system", "computer", "sap"}},
	{"Automotive", []string{"auto", "porsche", "mercedes", "bmw", "vw", "volkswagen", "audi", "bosch", "continental", "zf"}},
	{"Beratung", []string{"consulting", "beratung", "advisory", "pwc", "deloitte", "kpmg", "ey", "accenture", "mckinsey", "bcg"}},
	{"Finanz", []string{"bank", "finance", "versicherung", "insurance", "sparkasse", "volksbank", "allianz", "axa", "commerzbank"}},
	{"Pharma", []string{"pharma", "medizin", "medical", "health", "gesundheit", "merck", "bayer", "roche", "sanofi"}},
	{"Industrie", []string{"industrie", "engineering", "maschinen", "siemens", "thyssenkrupp", "linde", "basf"}},
	{"Energie", []string{"energie", "energy", "power", "strom", "eon", "rwe", "engie", "vattenfall", "mainova"}},
	{"Handel", []string{"handel", "retail", "edeka", "rewe", "aldi", "lidl", "metro", "amazon"}},
	{"Logistik", []string{"logistik", "logistics", "transport", "dhl", "ups", "fedex", "schenker", "kuehne"}},
}

// Categorize returns the company's category labels, never empty. An
// explicit non-empty offered_studies list is trusted verbatim; else
// the lowercased name is matched against the keyword table; else the
// single-element fallback list.
func Categorize(r model.RawCompany) []string {
	if offered := r.StrSlice("offered_studies"); len(offered) > 0 {
		return offered
	}

	name := strings.ToLower(r.Str("name"))

	var categories []string
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				categories = append(categories, rule.name)
				break
			}
		}
	}

	if len(categories) == 0 {
		return []string{FallbackCategory}
	}
	return categories
}

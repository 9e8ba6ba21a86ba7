package derive

import (
	"regexp"
	"strings"

	"github.com/hda-infdl/partner-scout/internal/model"
)

type brandDomain struct {
	brand  string
	domain string
}

// knownDomains maps well-known brand names to their web domains.
// Scanned in declaration order; first substring match wins.
var knownDomains = []brandDomain{
	{"telekom", "telekom.de"},
	{"deutsche telekom", "telekom.de"},
	{"siemens", "siemens.com"},
	{"bosch", "bosch.com"},
	{"bmw", "bmw.de"},
	{"mercedes", "mercedes-benz.com"},
	{"volkswagen", "volkswagen.de"},
	{"vw", "volkswagen.de"},
	{"audi", "audi.de"},
	{"porsche", "porsche.com"},
	{"sap", "sap.com"},
	{"allianz", "allianz.de"},
	{"lufthansa", "lufthansa.com"},
	{"deutsche bank", "db.com"},
	{"commerzbank", "commerzbank.de"},
	{"adidas", "adidas.com"},
	{"puma", "puma.com"},
	{"basf", "basf.com"},
	{"bayer", "bayer.com"},
	{"dhl", "dhl.com"},
	{"deutsche bahn", "bahn.de"},
	{"mainova", "mainova.de"},
	{"sparkasse", "sparkasse.de"},
	{"ikea", "ikea.com"},
}

var (
	schemePrefix  = regexp.MustCompile(`^https?://`)
	legalSuffixes = regexp.MustCompile(`gmbh|ag|kg|ohg|gbr|ug|se|&co\.|mbh|gesellschaft|für`)
	nonDomainChar = regexp.MustCompile(`[^a-z0-9-]`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// ExtractDomain reduces a URL to its bare host: scheme and leading
// "www." stripped, anything after the first "/" dropped.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	domain := schemePrefix.ReplaceAllString(rawURL, "")
	domain = strings.TrimPrefix(domain, "www.")
	domain, _, _ = strings.Cut(domain, "/")
	return domain
}

// GuessDomain derives a likely web domain for logo lookup. Priority:
// host of any resolved website URL, then the curated brand table,
// then a normalized slug of the name with legal-entity suffixes
// stripped and ".de" appended. Returns "" when nothing plausible
// remains. The guess is best-effort; correctness is not guaranteed.
func GuessDomain(r model.RawCompany) string {
	if u := Website(r); u != "" {
		if domain := ExtractDomain(u); domain != "" {
			return domain
		}
	}

	name := r.Str("name")
	if name == "" {
		return ""
	}
	lower := strings.ToLower(name)

	for _, bd := range knownDomains {
		if strings.Contains(lower, bd.brand) {
			return bd.domain
		}
	}

	clean := whitespace.ReplaceAllString(lower, "")
	clean = legalSuffixes.ReplaceAllString(clean, "")
	clean = nonDomainChar.ReplaceAllString(clean, "")
	if len(clean) > 2 {
		return clean + ".de"
	}

	return ""
}

package derive

import (
	"regexp"
	"strconv"

	"github.com/hda-infdl/partner-scout/internal/model"
)

// yearPattern matches a 4-digit year 1000-2099 anywhere in the text,
// so "Seit 1990" and "gegründet 1668" both work.
var yearPattern = regexp.MustCompile(`\b(1\d|20)\d{2}\b`)

// FoundedYear extracts a plausible founding year from the free-text
// founded field, coercing non-string values to text first. Returns
// nil when no year pattern is found.
func FoundedYear(r model.RawCompany) *int {
	val := r.Text("founded")
	if val == "" {
		return nil
	}
	match := yearPattern.FindString(val)
	if match == "" {
		return nil
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &year
}

package derive

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/hda-infdl/partner-scout/internal/model"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// StableID returns the join key under which viewed/applied/notes
// state is persisted: the record's own id, else its institution id,
// else a slug of the name. A record with neither id nor name gets a
// random UUID, which does NOT survive reloads; such records cannot
// carry persisted state. Known limitation, kept as observed upstream
// behavior (see DESIGN.md).
func StableID(r model.RawCompany) string {
	if id := r.Text("id"); id != "" {
		return id
	}
	if id := r.Text("institutionId"); id != "" {
		return id
	}
	if name := r.Str("name"); name != "" {
		return Slug(name)
	}
	return uuid.NewString()
}

// Slug lowercases, trims, and collapses every non-alphanumeric run
// into a single hyphen.
func Slug(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	return nonSlugChars.ReplaceAllString(s, "-")
}

// Augment derives all load-time attributes for a raw record. Called
// once per record right after fetch; the result is immutable.
func Augment(r model.RawCompany) model.Company {
	return model.Company{
		Raw:         r,
		ID:          StableID(r),
		Categories:  Categorize(r),
		DistanceKm:  DistanceToReference(r),
		FoundedYear: FoundedYear(r),
	}
}

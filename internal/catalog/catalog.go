// Package catalog holds the augmented company list for a session and
// answers search, filter, and sort queries over it. The catalog is
// built once after fetch and never mutated; queries return fresh
// slices.
package catalog

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hda-infdl/partner-scout/internal/derive"
	"github.com/hda-infdl/partner-scout/internal/model"
)

// SortKey selects the ordering of query results.
type SortKey string

const (
	SortName     SortKey = "name"
	SortDistance SortKey = "distance"
	SortFounded  SortKey = "founded"
)

// CategoryAll matches every company regardless of category.
const CategoryAll = "all"

// FixedFilters is the category set offered as quick filters.
var FixedFilters = []string{"KoSI", "KITS", "Data Science", "Finanz", "IT"}

// augmentConcurrency bounds the load-time derivation fan-out.
const augmentConcurrency = 8

// ParseSort validates a sort key from user input.
func ParseSort(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortName, SortDistance, SortFounded:
		return SortKey(s), nil
	case "":
		return SortName, nil
	default:
		return "", eris.Errorf("catalog: unknown sort key %q (want name, distance, or founded)", s)
	}
}

// Query narrows and orders the company list. Zero value means: no
// search term, all categories, sorted by name.
type Query struct {
	Search   string
	Category string
	Sort     SortKey
}

// Catalog is the in-memory session view over the augmented companies.
type Catalog struct {
	companies []model.Company
}

// New augments the fetched records and builds the session catalog.
// Derivation is pure, so records are processed concurrently; input
// order is preserved.
func New(records []model.RawCompany) *Catalog {
	companies := make([]model.Company, len(records))

	g := new(errgroup.Group)
	g.SetLimit(augmentConcurrency)
	for i, r := range records {
		i, r := i, r
		g.Go(func() error {
			companies[i] = derive.Augment(r)
			return nil
		})
	}
	_ = g.Wait() // augmentation cannot fail

	return &Catalog{companies: companies}
}

// Len returns the total number of companies in the catalog.
func (c *Catalog) Len() int { return len(c.companies) }

// All returns every company in fetch order.
func (c *Catalog) All() []model.Company {
	out := make([]model.Company, len(c.companies))
	copy(out, c.companies)
	return out
}

// ByID finds a company by its stable id.
func (c *Catalog) ByID(id string) (model.Company, bool) {
	for _, co := range c.companies {
		if co.ID == id {
			return co, true
		}
	}
	return model.Company{}, false
}

// CategoryCounts tallies how many companies carry each category.
func (c *Catalog) CategoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, co := range c.companies {
		for _, cat := range co.Categories {
			counts[cat]++
		}
	}
	return counts
}

// Find returns the companies matching q, ordered per its sort key.
// Search matches name, city, or any category, case-insensitively.
// Companies without a distance or founding year always sort last
// under the respective keys; ties fall back to locale-aware name
// order.
func (c *Catalog) Find(q Query) []model.Company {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	var matched []model.Company
	for _, co := range c.companies {
		if matchesSearch(co, term) && matchesCategory(co, q.Category) {
			matched = append(matched, co)
		}
	}

	coll := collate.New(language.German)
	byName := func(a, b model.Company) int {
		return coll.CompareString(a.Name(), b.Name())
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch q.Sort {
		case SortDistance:
			if cmp, decided := compareOptional(a.DistanceKm, b.DistanceKm); decided {
				return cmp
			}
		case SortFounded:
			if cmp, decided := compareOptional(a.FoundedYear, b.FoundedYear); decided {
				return cmp
			}
		}
		return byName(a, b) < 0
	})

	return matched
}

// compareOptional orders two optional ints ascending with absent
// values last. decided is false when the pair ties and the caller
// should fall back to the name order.
func compareOptional(a, b *int) (less, decided bool) {
	switch {
	case a == nil && b == nil:
		return false, false
	case a == nil:
		return false, true
	case b == nil:
		return true, true
	case *a == *b:
		return false, false
	default:
		return *a < *b, true
	}
}

func matchesSearch(co model.Company, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(co.Name()), term) {
		return true
	}
	if strings.Contains(strings.ToLower(derive.City(co.Raw)), term) {
		return true
	}
	for _, cat := range co.Categories {
		if strings.Contains(strings.ToLower(cat), term) {
			return true
		}
	}
	return false
}

func matchesCategory(co model.Company, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	for _, cat := range co.Categories {
		if cat == category {
			return true
		}
	}
	return false
}

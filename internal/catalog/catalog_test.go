package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hda-infdl/partner-scout/internal/model"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	return New([]model.RawCompany{
		{"id": "a", "name": "Acme Software", "city": "Frankfurt", "founded": "1990"},
		{"id": "b", "name": "Zeta Bank", "city": "Berlin"},
		{"id": "c", "name": "Beta Logistik", "city": "Darmstadt", "founded": "Seit 1800"},
		{"id": "d", "name": "Ärzte Service", "offered_studies": []any{"KoSI"}},
	})
}

func TestNewPreservesOrderAndAugments(t *testing.T) {
	c := testCatalog(t)
	require.Equal(t, 4, c.Len())

	all := c.All()
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "d", all[3].ID)

	assert.Equal(t, []string{"IT"}, all[0].Categories)
	assert.Equal(t, []string{"Finanz"}, all[1].Categories)
	assert.Equal(t, []string{"Logistik"}, all[2].Categories)
	assert.Equal(t, []string{"KoSI"}, all[3].Categories)

	require.NotNil(t, all[0].DistanceKm)
	require.NotNil(t, all[2].DistanceKm)
	assert.Nil(t, all[3].DistanceKm, "no city, no distance")
}

func TestByID(t *testing.T) {
	c := testCatalog(t)

	co, ok := c.ByID("c")
	require.True(t, ok)
	assert.Equal(t, "Beta Logistik", co.Name())

	_, ok = c.ByID("nope")
	assert.False(t, ok)
}

func TestCategoryCounts(t *testing.T) {
	c := testCatalog(t)
	counts := c.CategoryCounts()
	assert.Equal(t, 1, counts["IT"])
	assert.Equal(t, 1, counts["Finanz"])
	assert.Equal(t, 1, counts["KoSI"])
}

func TestFindSearch(t *testing.T) {
	c := testCatalog(t)

	t.Run("matches name", func(t *testing.T) {
		got := c.Find(Query{Search: "acme"})
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].ID)
	})

	t.Run("matches city", func(t *testing.T) {
		got := c.Find(Query{Search: "darmstadt"})
		require.Len(t, got, 1)
		assert.Equal(t, "c", got[0].ID)
	})

	t.Run("matches category", func(t *testing.T) {
		got := c.Find(Query{Search: "logisti"})
		require.Len(t, got, 1)
		assert.Equal(t, "c", got[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Find(Query{Search: "quux"}))
	})

	t.Run("empty term matches all", func(t *testing.T) {
		assert.Len(t, c.Find(Query{}), 4)
	})
}

func TestFindCategoryFilter(t *testing.T) {
	c := testCatalog(t)

	got := c.Find(Query{Category: "Finanz"})
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	assert.Len(t, c.Find(Query{Category: CategoryAll}), 4)
	assert.Empty(t, c.Find(Query{Category: "Pharma"}))
}

func TestFindSortName(t *testing.T) {
	c := testCatalog(t)
	got := c.Find(Query{Sort: SortName})
	require.Len(t, got, 4)
	// German collation sorts Ärzte with A, ahead of Beta
	assert.Equal(t, "Acme Software", got[0].Name())
	assert.Equal(t, "Ärzte Service", got[1].Name())
	assert.Equal(t, "Beta Logistik", got[2].Name())
	assert.Equal(t, "Zeta Bank", got[3].Name())
}

func TestFindSortDistanceAbsentLast(t *testing.T) {
	c := New([]model.RawCompany{
		{"id": "far", "name": "Far", "city": "Berlin"},
		{"id": "none", "name": "None"},
		{"id": "near", "name": "Near", "city": "Darmstadt"},
	})

	got := c.Find(Query{Sort: SortDistance})
	require.Len(t, got, 3)
	assert.Equal(t, "near", got[0].ID)
	assert.Equal(t, "far", got[1].ID)
	assert.Equal(t, "none", got[2].ID)
}

func TestFindSortFoundedAbsentLast(t *testing.T) {
	c := New([]model.RawCompany{
		{"id": "a", "name": "A", "founded": "1990"},
		{"id": "b", "name": "B"},
		{"id": "c", "name": "C", "founded": "1800"},
	})

	got := c.Find(Query{Sort: SortFounded})
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "b", got[2].ID)
}

func TestFindSortTiesFallBackToName(t *testing.T) {
	c := New([]model.RawCompany{
		{"id": "z", "name": "Zebra", "city": "Darmstadt"},
		{"id": "a", "name": "Alpha", "city": "Darmstadt"},
	})

	got := c.Find(Query{Sort: SortDistance})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "z", got[1].ID)
}

func TestParseSort(t *testing.T) {
	for _, s := range []string{"name", "distance", "founded"} {
		k, err := ParseSort(s)
		require.NoError(t, err)
		assert.Equal(t, SortKey(s), k)
	}

	k, err := ParseSort("")
	require.NoError(t, err)
	assert.Equal(t, SortName, k)

	_, err = ParseSort("size")
	assert.Error(t, err)
}

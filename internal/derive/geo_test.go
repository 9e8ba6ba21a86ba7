package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hda-infdl/partner-scout/internal/model"
)

func record(city string) model.RawCompany {
	return model.RawCompany{"city": city}
}

func TestDistanceToReference(t *testing.T) {
	t.Run("direct gazetteer hit", func(t *testing.T) {
		d := DistanceToReference(record("Darmstadt"))
		require.NotNil(t, d)
		assert.GreaterOrEqual(t, *d, 0)
		assert.Less(t, *d, 5, "reference point is in Darmstadt")
	})

	t.Run("casing and whitespace do not matter", func(t *testing.T) {
		a := DistanceToReference(record("  Darmstadt "))
		b := DistanceToReference(record("darmstadt"))
		require.NotNil(t, a)
		require.NotNil(t, b)
		assert.Equal(t, *a, *b)
	})

	t.Run("postal code is stripped", func(t *testing.T) {
		a := DistanceToReference(record("64293 Darmstadt"))
		b := DistanceToReference(record("Darmstadt"))
		require.NotNil(t, a)
		require.NotNil(t, b)
		assert.Equal(t, *a, *b)
	})

	t.Run("trailing postal code is stripped", func(t *testing.T) {
		a := DistanceToReference(record("Darmstadt 64293"))
		require.NotNil(t, a)
	})

	t.Run("key contained in noisy input", func(t *testing.T) {
		d := DistanceToReference(record("Darmstadt, Germany"))
		require.NotNil(t, d)
	})

	t.Run("input contained in longer key", func(t *testing.T) {
		// "bad homburg v" is no key, but "bad homburg v. d. höhe" contains it
		d := DistanceToReference(record("bad homburg v"))
		require.NotNil(t, d)
	})

	t.Run("monotonic with geographic separation", func(t *testing.T) {
		near := DistanceToReference(record("Frankfurt"))
		far := DistanceToReference(record("Berlin"))
		require.NotNil(t, near)
		require.NotNil(t, far)
		assert.Less(t, *near, *far)
	})

	t.Run("unknown city is absent", func(t *testing.T) {
		assert.Nil(t, DistanceToReference(record("Atlantis")))
	})

	t.Run("missing city is absent", func(t *testing.T) {
		assert.Nil(t, DistanceToReference(model.RawCompany{}))
		assert.Nil(t, DistanceToReference(record("")))
	})

	t.Run("address list city wins", func(t *testing.T) {
		r := model.RawCompany{
			"city":      "Berlin",
			"addresses": []any{map[string]any{"city": "Darmstadt"}},
		}
		d := DistanceToReference(r)
		require.NotNil(t, d)
		assert.Less(t, *d, 5)
	})
}

func TestLookupCityDeterminism(t *testing.T) {
	// Repeated calls must return the same coordinate for inputs that
	// qualify for more than one key.
	first, ok := LookupCity("frankfurt am main, deutschland")
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		c, ok := LookupCity("frankfurt am main, deutschland")
		require.True(t, ok)
		assert.Equal(t, first, c)
	}
}

func TestHaversine(t *testing.T) {
	darmstadt := model.Coordinate{Lat: 49.8728, Lon: 8.6512}
	berlin := model.Coordinate{Lat: 52.5200, Lon: 13.4050}

	t.Run("zero for identical points", func(t *testing.T) {
		assert.InDelta(t, 0, Haversine(darmstadt, darmstadt), 0.001)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, Haversine(darmstadt, berlin), Haversine(berlin, darmstadt), 0.001)
	})

	t.Run("known separation", func(t *testing.T) {
		// Darmstadt-Berlin is roughly 440km as the crow flies
		d := Haversine(darmstadt, berlin)
		assert.Greater(t, d, 400.0)
		assert.Less(t, d, 500.0)
	})
}

package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hda-infdl/partner-scout/internal/model"
)

func TestFoundedYear(t *testing.T) {
	tests := []struct {
		name    string
		founded any
		want    *int
	}{
		{"plain year", "1995", intPtr(1995)},
		{"embedded in text", "Seit 1990", intPtr(1990)},
		{"pre-1700 year", "gegründet 1668", intPtr(1668)},
		{"2000s year", "est. 2014", intPtr(2014)},
		{"numeric value", float64(1987), intPtr(1987)},
		{"first match wins", "1901, neu gegründet 1948", intPtr(1901)},
		{"empty string", "", nil},
		{"no year token", "vor langer Zeit", nil},
		{"out of range", "Jahr 2105", nil},
		{"five digit number", "12345", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.RawCompany{"founded": tt.founded}
			got := FoundedYear(r)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}

	t.Run("missing field", func(t *testing.T) {
		assert.Nil(t, FoundedYear(model.RawCompany{}))
	})
}

func intPtr(v int) *int { return &v }

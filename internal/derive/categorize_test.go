package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hda-infdl/partner-scout/internal/model"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name   string
		record model.RawCompany
		want   []string
	}{
		{
			name:   "explicit list returned verbatim",
			record: model.RawCompany{"name": "Software AG", "offered_studies": []any{"KoSI", "Data Science"}},
			want:   []string{"KoSI", "Data Science"},
		},
		{
			name:   "single keyword match",
			record: model.RawCompany{"name": "Sparkasse Darmstadt"},
			want:   []string{"Finanz"},
		},
		{
			name:   "multiple categories in table order",
			record: model.RawCompany{"name": "Bosch Software Innovations"},
			want:   []string{"IT", "Automotive"},
		},
		{
			name:   "substring match is intentional",
			record: model.RawCompany{"name": "Bankfurt Immobilien"},
			want:   []string{"Finanz"},
		},
		{
			name:   "no keyword falls back to Sonstige",
			record: model.RawCompany{"name": "Müller & Schmidt"},
			want:   []string{FallbackCategory},
		},
		{
			name:   "missing name falls back to Sonstige",
			record: model.RawCompany{},
			want:   []string{FallbackCategory},
		},
		{
			name:   "empty explicit list does not win",
			record: model.RawCompany{"name": "RWE Power", "offered_studies": []any{}},
			want:   []string{"Energie"},
		},
		{
			name:   "case insensitive name matching",
			record: model.RawCompany{"name": "MAINOVA AG"},
			want:   []string{"Energie"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.record))
		})
	}
}

func TestCategorizeNeverEmpty(t *testing.T) {
	for _, r := range []model.RawCompany{{}, {"name": ""}, {"name": "Xyz"}, {"offered_studies": "not-a-list"}} {
		assert.NotEmpty(t, Categorize(r))
	}
}

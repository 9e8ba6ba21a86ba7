package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hda-infdl/partner-scout/internal/model"
)

func TestMissingInfo(t *testing.T) {
	tests := []struct {
		name   string
		record model.RawCompany
		want   []string
	}{
		{
			name:   "everything missing, stable order",
			record: model.RawCompany{"name": "ACME"},
			want:   []string{"Standort", "Webseite", "Kontakt"},
		},
		{
			name: "fully populated",
			record: model.RawCompany{
				"city":    "Darmstadt",
				"website": "https://acme.de",
				"email":   "info@acme.de",
			},
			want: nil,
		},
		{
			name:   "street alone satisfies Standort",
			record: model.RawCompany{"street": "Haardtring 100"},
			want:   []string{"Webseite", "Kontakt"},
		},
		{
			name:   "address list satisfies Standort",
			record: model.RawCompany{"addresses": []any{map[string]any{"city": "Mainz"}}},
			want:   []string{"Webseite", "Kontakt"},
		},
		{
			name:   "phone alias alone satisfies Kontakt",
			record: model.RawCompany{"telefon": "06151 100"},
			want:   []string{"Standort", "Webseite"},
		},
		{
			name:   "homepage alias satisfies Webseite",
			record: model.RawCompany{"homepage": "https://acme.de"},
			want:   []string{"Standort", "Kontakt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MissingInfo(tt.record))
		})
	}
}

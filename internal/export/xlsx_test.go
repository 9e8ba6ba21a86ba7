package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/hda-infdl/partner-scout/internal/derive"
	"github.com/hda-infdl/partner-scout/internal/model"
)

func TestWriteXLSX(t *testing.T) {
	companies := []model.Company{
		derive.Augment(model.RawCompany{
			"id": "a", "name": "Sparkasse Darmstadt", "city": "Darmstadt",
			"website": "https://www.sparkasse.de/jobs", "founded": "1847",
			"email": "info@sparkasse.de",
		}),
		derive.Augment(model.RawCompany{"id": "b", "name": "Mystery"}),
	}

	path := filepath.Join(t.TempDir(), "partners.xlsx")
	require.NoError(t, WriteXLSX(companies, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	require.Equal(t, len(companies)+1, len(sheet.Rows), "header plus one row per company")

	assert.Equal(t, "Name", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "Sparkasse Darmstadt", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "sparkasse.de", sheet.Rows[1].Cells[5].Value)
	assert.Equal(t, "", sheet.Rows[2].Cells[3].Value, "absent distance renders empty")
	assert.Contains(t, sheet.Rows[2].Cells[6].Value, "Standort")
}

// Package export writes a catalog view to a spreadsheet.
package export

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/hda-infdl/partner-scout/internal/derive"
	"github.com/hda-infdl/partner-scout/internal/model"
)

var header = []string{
	"Name", "Stadt", "Kategorien", "Entfernung (km)", "Gegründet",
	"Domain", "Fehlende Infos",
}

// WriteXLSX writes one row per company to an XLSX file at path, with
// a header row. Absent derived values render as empty cells.
func WriteXLSX(companies []model.Company, path string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Partnerunternehmen")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	row := sheet.AddRow()
	for _, h := range header {
		row.AddCell().Value = h
	}

	for _, co := range companies {
		row := sheet.AddRow()
		row.AddCell().Value = co.Name()
		row.AddCell().Value = derive.City(co.Raw)
		row.AddCell().Value = strings.Join(co.Categories, ", ")
		row.AddCell().Value = optionalInt(co.DistanceKm)
		row.AddCell().Value = optionalInt(co.FoundedYear)
		row.AddCell().Value = derive.GuessDomain(co.Raw)
		row.AddCell().Value = strings.Join(derive.MissingInfo(co.Raw), ", ")
	}

	if err := file.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

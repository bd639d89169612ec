// Package export writes the qualified lead list as CSV, JSON, or XLSX.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/webless-hunter/prospect-cli/internal/model"
)

// headers is the exported column set, in order.
var headers = []string{
	"Business Name",
	"Phone",
	"Address",
	"Distance",
	"Rating",
	"Business Type",
	"Estimated Value",
}

// FormatDistance renders a distance as meters below one kilometer and
// as kilometers with one decimal above.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1fkm", km)
}

func formatRating(rating float64) string {
	if rating <= 0 {
		return "N/A"
	}
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

// CSV writes the lead list as comma-separated values with a header row.
func CSV(w io.Writer, leads []model.Lead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, l := range leads {
		record := []string{
			l.Name,
			l.Phone,
			l.Address,
			FormatDistance(l.DistanceKM),
			formatRating(l.Rating),
			l.BusinessType,
			strconv.Itoa(l.EstimatedValue),
		}
		if err := cw.Write(record); err != nil {
			return eris.Wrap(err, "export: write csv record")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}

// JSON writes the lead list as an indented JSON array.
func JSON(w io.Writer, leads []model.Lead) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(leads), "export: encode json")
}

// XLSX writes the lead list as a single-sheet workbook.
func XLSX(w io.Writer, leads []model.Lead) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Leads")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range headers {
		header.AddCell().Value = h
	}

	for _, l := range leads {
		row := sheet.AddRow()
		row.AddCell().Value = l.Name
		row.AddCell().Value = l.Phone
		row.AddCell().Value = l.Address
		row.AddCell().Value = FormatDistance(l.DistanceKM)
		row.AddCell().Value = formatRating(l.Rating)
		row.AddCell().Value = l.BusinessType
		row.AddCell().SetInt(l.EstimatedValue)
	}

	return eris.Wrap(f.Write(w), "export: write xlsx")
}

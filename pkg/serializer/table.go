package serializer

import (
	"fmt"
	"io"

	"github.com/dtnitsch/mcc-mnc-table/models"
	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteTable renders the records as a terminal table.
func WriteTable(w io.Writer, records []models.CarrierRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(CSVHeader))
	for i, col := range CSVHeader {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, r := range records {
		t.AppendRow(table.Row{r.MCC, r.MNC.String(), r.ISO, r.Country, countryCodeText(r), r.Network})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", len(records)})
	t.Render()
	return nil
}

package serializer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dtnitsch/mcc-mnc-table/models"
)

// CSVHeader is the fixed column order of CSV output.
var CSVHeader = []string{"MCC", "MNC", "ISO", "Country", "Country Code", "Network"}

type CSVOptions struct {
	Header bool
}

// WriteCSV writes one line per record. Values are written raw: commas are
// removed rather than quoted and line breaks become spaces, so every line
// splits cleanly on ",".
func WriteCSV(w io.Writer, records []models.CarrierRecord, opts CSVOptions) error {
	bw := bufio.NewWriter(w)
	if opts.Header {
		if err := writeCSVLine(bw, CSVHeader); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	line := make([]string, len(CSVHeader))
	for _, r := range records {
		line[0] = strconv.Itoa(r.MCC)
		line[1] = cleanCell(r.MNC.String())
		line[2] = cleanCell(r.ISO)
		line[3] = cleanCell(r.Country)
		line[4] = countryCodeText(r)
		line[5] = cleanCell(r.Network)
		if err := writeCSVLine(bw, line); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func writeCSVLine(w *bufio.Writer, fields []string) error {
	if _, err := w.WriteString(strings.Join(fields, ",")); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

var cellCleaner = strings.NewReplacer(",", "", "\r", "", "\n", " ")

func cleanCell(s string) string {
	return cellCleaner.Replace(s)
}

// ReadCSV reads records back from CSV written by WriteCSV. A leading header
// row is detected and skipped. Rows that cannot be coerced are dropped and
// counted.
func ReadCSV(r io.Reader) ([]models.CarrierRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true // WriteCSV leaves quotes in values unescaped

	records := []models.CarrierRecord{}
	dropped := 0
	first := true
	for {
		line, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, dropped, fmt.Errorf("failed to read CSV: %w", err)
		}
		if first {
			first = false
			if len(line) > 0 && strings.EqualFold(strings.TrimSpace(line[0]), CSVHeader[0]) {
				continue
			}
		}
		if len(line) != models.FieldCount {
			dropped++
			continue
		}

		var row models.RawRow
		copy(row[:], line)
		record, err := models.NewCarrierRecord(row)
		if err != nil {
			dropped++
			continue
		}
		records = append(records, record)
	}
	return records, dropped, nil
}

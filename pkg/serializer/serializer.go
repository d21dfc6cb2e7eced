// Package serializer renders carrier records in the supported output formats.
// Every writer is a pure projection: the same records produce the same bytes.
package serializer

import (
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/mcc-mnc-table/models"
)

type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatXML    Format = "xml"
	FormatYAML   Format = "yaml"
	FormatTable  Format = "table"
	FormatSQLite Format = "sqlite"
)

var formats = []Format{FormatCSV, FormatJSON, FormatXML, FormatYAML, FormatTable, FormatSQLite}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "yml" {
		f = FormatYAML
	}
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", name, FormatNames())
}

// FormatNames lists the accepted format names, comma separated.
func FormatNames() string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Ext returns the file extension used for default output names.
func (f Format) Ext() string {
	switch f {
	case FormatTable:
		return "txt"
	case FormatSQLite:
		return "db"
	default:
		return string(f)
	}
}

// Streams reports whether the format is written through an io.Writer.
func (f Format) Streams() bool {
	return f != FormatSQLite
}

type Options struct {
	CSVHeader bool
}

// Write renders records to w in the given format.
func Write(w io.Writer, format Format, records []models.CarrierRecord, opts Options) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, records, CSVOptions{Header: opts.CSVHeader})
	case FormatJSON:
		return WriteJSON(w, records)
	case FormatXML:
		return WriteXML(w, records)
	case FormatYAML:
		return WriteYAML(w, records)
	case FormatTable:
		return WriteTable(w, records)
	default:
		return fmt.Errorf("format %q cannot be written to a stream", format)
	}
}

// countryCodeText renders an absent dialing code as an empty string.
func countryCodeText(r models.CarrierRecord) string {
	if !r.HasCountryCode() {
		return ""
	}
	return fmt.Sprintf("%d", r.CountryCode)
}

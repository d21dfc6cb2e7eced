package serializer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dtnitsch/mcc-mnc-table/models"
)

// jsonRecord is the wire shape of one record. MNC and country code are
// decimal numbers, null when the source has none.
type jsonRecord struct {
	MCC         int    `json:"mcc"`
	MNC         *int   `json:"mnc"`
	ISO         string `json:"iso"`
	Country     string `json:"country"`
	CountryCode *int   `json:"country_code"`
	Network     string `json:"network"`
}

func toJSONRecord(r models.CarrierRecord) jsonRecord {
	out := jsonRecord{
		MCC:     r.MCC,
		ISO:     r.ISO,
		Country: r.Country,
		Network: r.Network,
	}
	if mnc, ok := r.MNC.Int(); ok {
		out.MNC = &mnc
	}
	if r.HasCountryCode() {
		cc := r.CountryCode
		out.CountryCode = &cc
	}
	return out
}

// WriteJSON writes the records as a JSON array indented with two spaces.
func WriteJSON(w io.Writer, records []models.CarrierRecord) error {
	out := make([]jsonRecord, len(records))
	for i, r := range records {
		out[i] = toJSONRecord(r)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

package serializer

import (
	"fmt"
	"io"

	"github.com/dtnitsch/mcc-mnc-table/models"
	"gopkg.in/yaml.v3"
)

type yamlRecord struct {
	MCC         int    `yaml:"mcc"`
	MNC         string `yaml:"mnc"`
	ISO         string `yaml:"iso"`
	Country     string `yaml:"country"`
	CountryCode int    `yaml:"country_code,omitempty"`
	Network     string `yaml:"network"`
}

// WriteYAML writes the records as a YAML sequence. MNC stays text so
// codes like "01" keep their leading zero.
func WriteYAML(w io.Writer, records []models.CarrierRecord) error {
	out := make([]yamlRecord, len(records))
	for i, r := range records {
		out[i] = yamlRecord{
			MCC:         r.MCC,
			MNC:         r.MNC.String(),
			ISO:         r.ISO,
			Country:     r.Country,
			CountryCode: r.CountryCode,
			Network:     r.Network,
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

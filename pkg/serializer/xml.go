package serializer

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/dtnitsch/mcc-mnc-table/models"
)

type xmlRecords struct {
	XMLName xml.Name    `xml:"records"`
	Records []xmlRecord `xml:"record"`
}

type xmlRecord struct {
	MCC         int    `xml:"mcc"`
	MNC         string `xml:"mnc"`
	ISO         string `xml:"iso"`
	Country     string `xml:"country"`
	CountryCode string `xml:"country_code"`
	Network     string `xml:"network"`
}

// WriteXML writes a <records> document with one <record> per item,
// indented with four spaces.
func WriteXML(w io.Writer, records []models.CarrierRecord) error {
	doc := xmlRecords{Records: make([]xmlRecord, len(records))}
	for i, r := range records {
		doc.Records[i] = xmlRecord{
			MCC:         r.MCC,
			MNC:         r.MNC.String(),
			ISO:         r.ISO,
			Country:     r.Country,
			CountryCode: countryCodeText(r),
			Network:     r.Network,
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode XML: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write XML: %w", err)
	}
	return nil
}

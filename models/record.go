package models

import (
	"iter"
	"log/slog"
	"strconv"
	"strings"
)

// FieldCount is the number of cells a table row must carry to become a record.
const FieldCount = 6

// FieldNames lists the record fields in column order.
var FieldNames = [FieldCount]string{"mcc", "mnc", "iso", "country", "country_code", "network"}

// RawRow holds the six cell texts of one table row, in column order.
type RawRow [FieldCount]string

// MNC is a Mobile Network Code kept as its source text so that
// leading zeros ("01" vs "1") are preserved.
type MNC string

// MNCNotAvailable marks carriers listed without a network code.
const MNCNotAvailable MNC = "n/a"

// Available reports whether the code carries digits.
func (m MNC) Available() bool {
	return m != MNCNotAvailable && m != ""
}

// Int returns the decimal value of the code.
func (m MNC) Int() (int, bool) {
	if !m.Available() {
		return 0, false
	}
	n, err := strconv.Atoi(string(m))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m MNC) String() string {
	return string(m)
}

// CarrierRecord is one operator identity from the MCC/MNC table.
type CarrierRecord struct {
	MCC         int
	MNC         MNC
	ISO         string
	Country     string
	CountryCode int // 0 when the source has no usable dialing code
	Network     string
}

// HasCountryCode reports whether a dialing code was present.
func (r CarrierRecord) HasCountryCode() bool {
	return r.CountryCode > 0
}

// NewCarrierRecord coerces a raw row into a record.
// MCC and MNC are always read as decimal.
func NewCarrierRecord(row RawRow) (CarrierRecord, error) {
	for i, cell := range row {
		// country_code may be absent
		if i != 4 && strings.TrimSpace(cell) == "" {
			return CarrierRecord{}, &RecordError{Row: row, Field: FieldNames[i], Reason: "empty cell"}
		}
	}

	mccText := strings.TrimSpace(row[0])
	if !isDigits(mccText) {
		return CarrierRecord{}, &RecordError{Row: row, Field: "mcc", Reason: "not a decimal number"}
	}
	mcc, err := strconv.Atoi(mccText)
	if err != nil {
		return CarrierRecord{}, &RecordError{Row: row, Field: "mcc", Reason: err.Error()}
	}

	mnc, err := parseMNC(strings.TrimSpace(row[1]))
	if err != nil {
		return CarrierRecord{}, &RecordError{Row: row, Field: "mnc", Reason: err.Error()}
	}

	return CarrierRecord{
		MCC:         mcc,
		MNC:         mnc,
		ISO:         strings.TrimSpace(row[2]),
		Country:     strings.TrimSpace(row[3]),
		CountryCode: parseCountryCode(strings.TrimSpace(row[4])),
		Network:     strings.TrimSpace(row[5]),
	}, nil
}

func parseMNC(text string) (MNC, error) {
	if strings.EqualFold(text, string(MNCNotAvailable)) {
		return MNCNotAvailable, nil
	}
	if !isDigits(text) || len(text) < 2 || len(text) > 3 {
		return "", errInvalidMNC
	}
	return MNC(text), nil
}

// parseCountryCode returns 0 for anything that is not a positive integer.
func parseCountryCode(text string) int {
	if !isDigits(text) {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CoerceRows converts every row the sequence yields, dropping those that
// cannot be coerced. It returns the kept records in source order and the
// number of dropped rows. The returned slice is never nil.
func CoerceRows(rows iter.Seq[RawRow], logger *slog.Logger) ([]CarrierRecord, int) {
	records := []CarrierRecord{}
	dropped := 0
	index := 0
	for row := range rows {
		index++
		record, err := NewCarrierRecord(row)
		if err != nil {
			dropped++
			if logger != nil {
				logger.Warn("dropping row", "row", index, "error", err)
			}
			continue
		}
		records = append(records, record)
	}
	return records, dropped
}

package models

import (
	"errors"
	"fmt"
	"strings"
)

var errInvalidMNC = errors.New("expected n/a or two to three decimal digits")

// NetworkError reports a failed fetch: transport error or non-2xx status.
type NetworkError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError reports that the expected markup or pattern was not found,
// which usually means the upstream page changed structure.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse page: %s: %v", e.Reason, e.Err)
	}
	return "failed to parse page: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RecordError reports a single row that could not be coerced to a CarrierRecord.
type RecordError struct {
	Row    RawRow
	Field  string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("invalid %s in row [%s]: %s", e.Field, strings.Join(e.Row[:], ", "), e.Reason)
}

package parser

import (
	"bufio"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/dtnitsch/mcc-mnc-table/models"
)

type Parser struct {
	Logger *slog.Logger
}

// Parse locates the data in req.Body and returns a cursor over its rows.
// Structural failures (missing table, tbody or literal) are reported
// immediately as *models.ParseError; row-level problems never are.
func (p *Parser) Parse(req models.ParseRequest) (*Scanner, error) {
	var (
		next cellSource
		err  error
	)
	switch req.Mode {
	case models.ParseModeTable:
		selector := req.Selector
		if selector == "" {
			selector = models.DefaultSelector
		}
		next, err = tableCells(req.Body, selector)
	case models.ParseModeLegacy:
		next, err = legacyCells(req.Body)
	case models.ParseModeJS:
		next, err = jsCells(req.Body, req.Marker)
	default:
		return nil, fmt.Errorf("unsupported parse mode: %v", req.Mode)
	}
	if err != nil {
		return nil, err
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{next: next, logger: logger.With("mode", req.Mode.String())}, nil
}

// cellSource yields the raw cells of the next row, ok=false when exhausted.
type cellSource func() (cells []string, ok bool, err error)

// Scanner is a lazy, finite, non-restartable cursor over table rows in
// document order. Rows with fewer than six populated cells are skipped.
type Scanner struct {
	next    cellSource
	logger  *slog.Logger
	row     models.RawRow
	seen    int
	skipped int
	err     error
	done    bool
}

// Next advances to the next complete row.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}
	for {
		cells, ok, err := s.next()
		if err != nil {
			s.err = err
			s.done = true
			return false
		}
		if !ok {
			s.done = true
			return false
		}
		s.seen++

		var populated []string
		for _, c := range cells {
			if c = normalizeText(c); c != "" {
				populated = append(populated, c)
			}
		}
		if len(populated) < models.FieldCount {
			s.skipped++
			s.logger.Debug("skipping incomplete row", "row", s.seen, "cells", len(populated))
			continue
		}

		copy(s.row[:], populated[:models.FieldCount])
		return true
	}
}

// Row returns the row Next advanced to.
func (s *Scanner) Row() models.RawRow {
	return s.row
}

// Skipped returns the number of rows dropped so far for missing cells.
func (s *Scanner) Skipped() int {
	return s.skipped
}

// Err returns the first error hit while reading, if any.
func (s *Scanner) Err() error {
	return s.err
}

// All adapts the scanner to a range-over-func sequence. It shares the
// scanner's position, so ranging twice yields nothing the second time.
func (s *Scanner) All() iter.Seq[models.RawRow] {
	return func(yield func(models.RawRow) bool) {
		for s.Next() {
			if !yield(s.Row()) {
				return
			}
		}
	}
}

// Collect drains the scanner into a slice.
func (s *Scanner) Collect() ([]models.RawRow, error) {
	rows := []models.RawRow{}
	for row := range s.All() {
		rows = append(rows, row)
	}
	return rows, s.Err()
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	if !strings.ContainsAny(input, "\r\n") {
		return strings.TrimSpace(input)
	}
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			// Write the line and a single space for separation
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/dtnitsch/mcc-mnc-table/models"
)

const maxLineBytes = 1 << 20

var legacyRowPattern = regexp.MustCompile(strings.Repeat(`<td>([^<]*)</td>`, models.FieldCount))

var (
	tbodyOpen  = []byte("<tbody>")
	tbodyClose = []byte("</tbody>")
)

// legacyCells scans the page line by line: every line after the one
// holding <tbody>, up to </tbody>, is one row made of six consecutive
// bare <td> cells.
func legacyCells(body []byte) (cellSource, error) {
	if !bytes.Contains(body, tbodyOpen) {
		return nil, &models.ParseError{Reason: "no <tbody> in page"}
	}

	lines := bufio.NewScanner(bytes.NewReader(body))
	lines.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	inBody := false
	finished := false

	return func() ([]string, bool, error) {
		for !finished && lines.Scan() {
			line := lines.Bytes()
			switch {
			case bytes.Contains(line, tbodyOpen):
				inBody = true
			case bytes.Contains(line, tbodyClose):
				finished = true
			case inBody:
				if len(bytes.TrimSpace(line)) == 0 {
					continue
				}
				match := legacyRowPattern.FindSubmatch(line)
				if match == nil {
					// Counted as an incomplete row by the scanner.
					return nil, true, nil
				}
				cells := make([]string, models.FieldCount)
				for n := range cells {
					cells[n] = html.UnescapeString(string(match[n+1]))
				}
				return cells, true, nil
			}
		}
		if err := lines.Err(); err != nil {
			return nil, false, fmt.Errorf("failed to read page lines: %w", err)
		}
		return nil, false, nil
	}, nil
}

package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dtnitsch/mcc-mnc-table/models"
	"github.com/google/go-cmp/cmp"
)

const tablePage = `<!DOCTYPE html>
<html>
<head><title>Mobile Country Codes (MCC) and Mobile Network Codes (MNC)</title></head>
<body>
<table id="mncmccTable">
<thead>
<tr><th>MCC</th><th>MNC</th><th>ISO</th><th>Country</th><th>Country Code</th><th>Network</th></tr>
</thead>
<tbody>
<tr><td>310</td><td>260</td><td>US</td><td>United States</td><td>1</td><td>T-Mobile</td></tr>
<tr><td>234</td><td>01</td><td>GB</td><td>United Kingdom</td><td>44</td><td>Vectone Mobile</td></tr>
<tr><td>310</td><td>410</td><td>US</td><td>United States</td><td>1</td><td>AT&amp;T Wireless Inc.</td></tr>
<tr><td>412</td><td>n/a</td><td>AF</td><td>Afghanistan</td><td>93</td><td>Unknown</td></tr>
</tbody>
</table>
</body>
</html>
`

var tablePageRows = []models.RawRow{
	{"310", "260", "US", "United States", "1", "T-Mobile"},
	{"234", "01", "GB", "United Kingdom", "44", "Vectone Mobile"},
	{"310", "410", "US", "United States", "1", "AT&T Wireless Inc."},
	{"412", "n/a", "AF", "Afghanistan", "93", "Unknown"},
}

func parse(t *testing.T, req models.ParseRequest) []models.RawRow {
	t.Helper()
	p := &Parser{}
	s, err := p.Parse(req)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	rows, err := s.Collect()
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return rows
}

func TestParse_TableYieldsRowsInOrder(t *testing.T) {
	rows := parse(t, models.ParseRequest{Body: []byte(tablePage), Mode: models.ParseModeTable})
	if diff := cmp.Diff(tablePageRows, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_LegacyMatchesTable(t *testing.T) {
	rows := parse(t, models.ParseRequest{Body: []byte(tablePage), Mode: models.ParseModeLegacy})
	if diff := cmp.Diff(tablePageRows, rows); diff != "" {
		t.Errorf("legacy rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_YieldsExactlyNRows(t *testing.T) {
	for _, n := range []int{0, 1, 25} {
		t.Run(fmt.Sprintf("%d rows", n), func(t *testing.T) {
			var b strings.Builder
			b.WriteString(`<table id="mncmccTable"><tbody>`)
			for i := 0; i < n; i++ {
				fmt.Fprintf(&b, "<tr><td>%d</td><td>%02d</td><td>XX</td><td>Country %d</td><td>%d</td><td>Net %d</td></tr>\n", 200+i, i, i, i+1, i)
			}
			b.WriteString(`</tbody></table>`)

			rows := parse(t, models.ParseRequest{Body: []byte(b.String()), Mode: models.ParseModeTable})
			if len(rows) != n {
				t.Fatalf("got %d rows, want %d", len(rows), n)
			}
			for i, row := range rows {
				if row[3] != fmt.Sprintf("Country %d", i) {
					t.Errorf("row %d country = %q, order not preserved", i, row[3])
				}
			}
		})
	}
}

func TestParse_SkipsIncompleteRows(t *testing.T) {
	page := `<table id="mncmccTable"><tbody>
<tr><td>310</td><td>260</td><td>US</td><td>United States</td><td>1</td><td>T-Mobile</td></tr>
<tr><td>310</td><td>270</td><td>US</td><td>United States</td><td></td><td>Lost Cell</td></tr>
<tr><td>310</td></tr>
<tr><td>262</td><td>01</td><td>DE</td><td>Germany</td><td>49</td><td>Telekom</td></tr>
</tbody></table>`

	p := &Parser{}
	s, err := p.Parse(models.ParseRequest{Body: []byte(page), Mode: models.ParseModeTable})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	rows, err := s.Collect()
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if s.Skipped() != 2 {
		t.Errorf("Skipped() = %d, want 2", s.Skipped())
	}
	if rows[1][5] != "Telekom" {
		t.Errorf("second row network = %q, want Telekom", rows[1][5])
	}
}

func TestParse_NormalizesWhitespace(t *testing.T) {
	page := `<table id="mncmccTable"><tbody>
<tr><td> 310 </td><td>260</td><td>US</td><td>United
    States</td><td>1</td><td>
T-Mobile
</td></tr>
</tbody></table>`

	rows := parse(t, models.ParseRequest{Body: []byte(page), Mode: models.ParseModeTable})
	want := []models.RawRow{{"310", "260", "US", "United States", "1", "T-Mobile"}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		req  models.ParseRequest
	}{
		{
			name: "table missing",
			req:  models.ParseRequest{Body: []byte(`<html><body><p>maintenance</p></body></html>`), Mode: models.ParseModeTable},
		},
		{
			name: "table without body rows",
			req:  models.ParseRequest{Body: []byte(`<table id="mncmccTable"></table>`), Mode: models.ParseModeTable},
		},
		{
			name: "custom selector missing",
			req:  models.ParseRequest{Body: []byte(tablePage), Mode: models.ParseModeTable, Selector: "#carriers"},
		},
		{
			name: "legacy without tbody",
			req:  models.ParseRequest{Body: []byte(`<table><tr><td>1</td></tr></table>`), Mode: models.ParseModeLegacy},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Parser{}
			_, err := p.Parse(tt.req)
			var parseErr *models.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse() error = %v, want *models.ParseError", err)
			}
		})
	}
}

func TestParse_TableImpliedTbody(t *testing.T) {
	page := `<table id="mncmccTable"><tr><td>310</td><td>260</td><td>US</td><td>United States</td><td>1</td><td>T-Mobile</td></tr></table>`

	rows := parse(t, models.ParseRequest{Body: []byte(page), Mode: models.ParseModeTable})
	want := []models.RawRow{{"310", "260", "US", "United States", "1", "T-Mobile"}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SelectorOnWrapper(t *testing.T) {
	page := `<div id="carriers"><table><tbody>
<tr><td>310</td><td>260</td><td>US</td><td>United States</td><td>1</td><td>T-Mobile</td></tr>
</tbody></table></div>`

	rows := parse(t, models.ParseRequest{Body: []byte(page), Mode: models.ParseModeTable, Selector: "#carriers"})
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
}

func TestParse_LegacySkipsUnmatchedLines(t *testing.T) {
	page := "<table>\n<tbody>\n" +
		"<tr><td>310</td><td>260</td><td>US</td><td>United States</td><td>1</td><td>T-Mobile</td></tr>\n" +
		"<tr><td colspan=\"6\">advert</td></tr>\n" +
		"<tr><td>262</td><td>01</td><td>DE</td><td>Germany</td><td>49</td><td>Telekom</td></tr>\n" +
		"</tbody>\n" +
		"<tr><td>999</td><td>99</td><td>XX</td><td>After</td><td>1</td><td>Ignored</td></tr>\n" +
		"</table>\n"

	p := &Parser{}
	s, err := p.Parse(models.ParseRequest{Body: []byte(page), Mode: models.ParseModeLegacy})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	rows, err := s.Collect()
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if s.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", s.Skipped())
	}
}

func TestScanner_NotRestartable(t *testing.T) {
	p := &Parser{}
	s, err := p.Parse(models.ParseRequest{Body: []byte(tablePage), Mode: models.ParseModeTable})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	first := 0
	for range s.All() {
		first++
	}
	second := 0
	for range s.All() {
		second++
	}
	if first != len(tablePageRows) {
		t.Errorf("first pass = %d rows, want %d", first, len(tablePageRows))
	}
	if second != 0 {
		t.Errorf("second pass = %d rows, want 0", second)
	}
}

func TestScanner_StopEarly(t *testing.T) {
	p := &Parser{}
	s, err := p.Parse(models.ParseRequest{Body: []byte(tablePage), Mode: models.ParseModeTable})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for range s.All() {
		break
	}
	if !s.Next() {
		t.Fatal("Next() = false after early break, want remaining rows")
	}
	if got := s.Row()[1]; got != "01" {
		t.Errorf("row after break mnc = %q, want 01", got)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  plain  ", "plain"},
		{"two\nlines", "two lines"},
		{"\n\n  padded \r\n  text\n", "padded text"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeText(tt.in); got != tt.want {
			t.Errorf("normalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

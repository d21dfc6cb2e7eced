package parser

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/mcc-mnc-table/models"
)

// tableCells finds the data table and walks its body rows one at a time.
func tableCells(body []byte, selector string) (cellSource, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &models.ParseError{Reason: "invalid HTML", Err: err}
	}

	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return nil, &models.ParseError{Reason: fmt.Sprintf("table %q not found", selector)}
	}
	if goquery.NodeName(table) != "table" {
		table = table.Find("table").First()
		if table.Length() == 0 {
			return nil, &models.ParseError{Reason: fmt.Sprintf("no table inside %q", selector)}
		}
	}

	// The HTML parser wraps bare <tr> children in an implied <tbody>, so
	// this only fails for a table with no body rows at all.
	tbody := table.ChildrenFiltered("tbody").First()
	if tbody.Length() == 0 {
		return nil, &models.ParseError{Reason: fmt.Sprintf("table %q has no tbody", selector)}
	}

	rows := tbody.ChildrenFiltered("tr")
	i := 0
	return func() ([]string, bool, error) {
		if i >= rows.Length() {
			return nil, false, nil
		}
		tr := rows.Eq(i)
		i++

		var cells []string
		tr.ChildrenFiltered("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, td.Text())
		})
		return cells, true, nil
	}, nil
}

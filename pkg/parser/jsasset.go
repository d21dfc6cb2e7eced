package parser

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"github.com/dtnitsch/mcc-mnc-table/models"
	"github.com/titanous/json5"
)

// defaultMarker matches an assignment or property whose name mentions mcc
// and whose value is an array literal, e.g. `var mccMncList = [` or `mcc_table: [`.
var defaultMarker = regexp.MustCompile(`(?i)[\w$.]*mcc[\w$]*["']?\s*[=:]\s*\[`)

// fieldAliases lists, per column, the object keys seen in bundled assets.
// The first key present in an element wins.
var fieldAliases = [models.FieldCount][]string{
	{"mcc"},
	{"mnc"},
	{"iso"},
	{"country"},
	{"country_code", "countryCode", "countrycode"},
	{"network", "operator"},
}

// jsCells pulls the array literal out of a JavaScript asset and walks its elements.
func jsCells(body []byte, marker string) (cellSource, error) {
	literal, err := findArrayLiteral(body, marker)
	if err != nil {
		return nil, err
	}

	var elements []any
	if err := json5.Unmarshal(literal, &elements); err != nil {
		return nil, &models.ParseError{Reason: "array literal is not valid JSON5", Err: err}
	}

	i := 0
	return func() ([]string, bool, error) {
		if i >= len(elements) {
			return nil, false, nil
		}
		el := elements[i]
		i++

		switch v := el.(type) {
		case []any:
			cells := make([]string, len(v))
			for n, item := range v {
				cells[n] = scalarText(item)
			}
			return cells, true, nil
		case map[string]any:
			cells := make([]string, models.FieldCount)
			for pos, keys := range fieldAliases {
				for _, key := range keys {
					if item, ok := v[key]; ok {
						cells[pos] = scalarText(item)
						break
					}
				}
			}
			return cells, true, nil
		default:
			// Counted as an incomplete row by the scanner.
			return nil, true, nil
		}
	}, nil
}

// findArrayLiteral returns the bytes of the bracket-balanced array that
// starts at the marker. Brackets inside string literals are ignored.
func findArrayLiteral(body []byte, marker string) ([]byte, error) {
	start := -1
	if marker != "" {
		idx := bytes.Index(body, []byte(marker))
		if idx < 0 {
			return nil, &models.ParseError{Reason: fmt.Sprintf("marker %q not found in asset", marker)}
		}
		rel := bytes.IndexByte(body[idx+len(marker):], '[')
		if rel < 0 {
			return nil, &models.ParseError{Reason: fmt.Sprintf("no array literal after marker %q", marker)}
		}
		start = idx + len(marker) + rel
	} else {
		loc := defaultMarker.FindIndex(body)
		if loc == nil {
			return nil, &models.ParseError{Reason: "no mcc array literal found in asset"}
		}
		start = loc[1] - 1
	}

	depth := 0
	var quote byte
	escaped := false
	for i := start; i < len(body); i++ {
		c := body[i]
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return body[start : i+1], nil
			}
		}
	}
	return nil, &models.ParseError{Reason: "unterminated array literal in asset"}
}

func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

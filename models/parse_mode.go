package models

import "fmt"

// ParseMode selects how rows are pulled out of the fetched document.
type ParseMode int

const (
	// ParseModeTable walks the data table with an HTML parser.
	ParseModeTable ParseMode = iota
	ParseModeLegacy // Line-oriented regular expression over <tbody>
	ParseModeJS     // JSON literal embedded in a JavaScript asset
)

func (m ParseMode) String() string {
	switch m {
	case ParseModeTable:
		return "table"
	case ParseModeLegacy:
		return "legacy"
	case ParseModeJS:
		return "js"
	default:
		return fmt.Sprintf("ParseMode(%d)", int(m))
	}
}

// ResolveParseMode determines the parse mode from the source kind and the legacy toggle.
func ResolveParseMode(source string, legacy bool) (ParseMode, error) {
	switch source {
	case "", SourceHTML:
		if legacy {
			return ParseModeLegacy, nil
		}
		return ParseModeTable, nil
	case SourceJS:
		return ParseModeJS, nil
	default:
		return 0, fmt.Errorf("unknown source %q (want %s or %s)", source, SourceHTML, SourceJS)
	}
}

package models

// ParseRequest carries a fetched document and the hints needed to extract rows from it.
type ParseRequest struct {
	URL  string
	Body []byte
	Mode ParseMode

	// Optional hints
	Selector string // CSS selector of the data table, table modes only
	Marker   string // Text preceding the array literal, JS mode only
}

package fetch

import (
	"github.com/dtnitsch/mcc-mnc-table/models"
	"github.com/dtnitsch/mcc-mnc-table/pkg/serializer"
	"github.com/dtnitsch/mcc-mnc-table/pkg/storage"
)

// DefaultOutput returns where a format is written when no path is given.
// Terminal tables go to stdout, everything else to mcc-mnc-table.<ext>.
func DefaultOutput(format serializer.Format) string {
	if format == serializer.FormatTable {
		return storage.StdioPath
	}
	return models.DefaultBaseName + "." + format.Ext()
}

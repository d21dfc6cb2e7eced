package db

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dtnitsch/mcc-mnc-table/internal/common"
	dbpkg "github.com/dtnitsch/mcc-mnc-table/pkg/db"
	"github.com/dtnitsch/mcc-mnc-table/pkg/serializer"
	"github.com/urfave/cli/v2"
)

// LookupAction prints the carriers stored for an MCC (and optional MNC)
// in a SQLite export.
func LookupAction(c *cli.Context) error {
	logger := common.LoggerFromContext(c)

	mcc, mnc, err := ParseLookupArgs(c)
	if err != nil {
		logger.Error("invalid lookup arguments", "error", err)
		return cli.Exit("", common.ExitUsage)
	}

	format, err := serializer.ParseFormat(c.String("format"))
	if err == nil && !format.Streams() {
		err = fmt.Errorf("format %s cannot be printed", format)
	}
	if err != nil {
		logger.Error("invalid format", "error", err)
		return cli.Exit("", common.ExitUsage)
	}

	path := c.String("db")
	if _, err := os.Stat(path); err != nil {
		logger.Error("database not found", "path", path, "error", err)
		return cli.Exit("", common.ExitUsage)
	}

	database, err := dbpkg.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	records, err := database.LookupCarrier(c.Context, mcc, mnc)
	if err != nil {
		return err
	}

	if last, err := database.LastExport(c.Context); err == nil && last != nil {
		logger.Info("Lookup", "mcc", mcc, "mnc", mnc, "matches", len(records),
			"export_id", last.ExportID, "source", last.SourceURL, "exported_at", last.CreatedAt)
	}

	var buf bytes.Buffer
	if err := serializer.Write(&buf, format, records, serializer.Options{CSVHeader: true}); err != nil {
		return err
	}
	if _, err := c.App.Writer.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write lookup results: %w", err)
	}

	if len(records) == 0 {
		return cli.Exit("", common.ExitUsage)
	}
	return nil
}

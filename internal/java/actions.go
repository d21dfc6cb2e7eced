package java

import (
	"bytes"
	"os"

	"github.com/dtnitsch/mcc-mnc-table/internal/common"
	"github.com/dtnitsch/mcc-mnc-table/pkg/serializer"
	"github.com/dtnitsch/mcc-mnc-table/pkg/storage"
	"github.com/urfave/cli/v2"
)

// JavaAction turns a CSV export into Java lookup array declarations.
func JavaAction(c *cli.Context) error {
	logger := common.LoggerFromContext(c)
	s := &storage.Storage{Stdin: os.Stdin, Stdout: os.Stdout}
	if c.App.Reader != nil {
		s.Stdin = c.App.Reader
	}
	if c.App.Writer != nil {
		s.Stdout = c.App.Writer
	}

	input := c.String("input")
	data, err := s.ReadFile(input)
	if err != nil {
		logger.Error("failed to read CSV", "path", input, "error", err)
		return cli.Exit("", common.ExitUsage)
	}

	records, dropped, err := serializer.ReadCSV(bytes.NewReader(data))
	if err != nil {
		logger.Error("failed to parse CSV", "path", input, "error", err)
		return cli.Exit("", common.ExitParse)
	}
	if dropped > 0 {
		logger.Warn("Dropped CSV rows", "path", input, "dropped", dropped)
	}

	var buf bytes.Buffer
	if err := serializer.WriteJava(&buf, records); err != nil {
		logger.Error("failed to render Java", "error", err)
		return cli.Exit("", common.ExitUsage)
	}

	output := c.String("output")
	if c.Args().Present() {
		output = c.Args().First()
	}
	if err := s.SaveFile(output, buf.Bytes()); err != nil {
		logger.Error("failed to write Java source", "path", output, "error", err)
		return cli.Exit("", common.ExitUsage)
	}

	logger.Info("Wrote Java source", "input", input, "output", output, "records", len(records))
	return nil
}

package common

import (
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

// LoggerFromContext builds the run logger from the global --quiet and
// --verbose flags, writing to the app's error writer.
func LoggerFromContext(c *cli.Context) *slog.Logger {
	var w io.Writer = os.Stderr
	if c.App != nil && c.App.ErrWriter != nil {
		w = c.App.ErrWriter
	}
	return NewLogger(w, c.Bool("quiet"), c.Bool("verbose"))
}

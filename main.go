package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/mcc-mnc-table/internal/db"
	"github.com/dtnitsch/mcc-mnc-table/internal/fetch"
	"github.com/dtnitsch/mcc-mnc-table/internal/java"
	"github.com/dtnitsch/mcc-mnc-table/models"
	dbpkg "github.com/dtnitsch/mcc-mnc-table/pkg/db"
	"github.com/dtnitsch/mcc-mnc-table/pkg/serializer"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "mccmnc",
		Usage: "Convert the MCC/MNC carrier table to CSV, JSON, XML and more",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   models.DefaultConfig,
				Usage:   "YAML config file (optional unless set explicitly)",
				EnvVars: []string{"MCCMNC_CONFIG"},
			},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors"},
			&cli.BoolFlag{Name: "verbose", Usage: "Log skipped rows and other debug detail"},
		},
		Commands: []*cli.Command{
			{
				Name:      "fetch",
				Usage:     "Download the table and write its records",
				ArgsUsage: "[OUTPUT]",
				Flags: append(conversionFlags(),
					&cli.StringFlag{
						Name:    "url",
						Usage:   "Page or asset to fetch (default " + models.DefaultURL + ")",
						EnvVars: []string{"MCCMNC_URL"},
					},
					&cli.DurationFlag{Name: "timeout", Usage: "HTTP timeout (default 30s)"},
					&cli.StringFlag{Name: "user-agent", Usage: "User-Agent header"},
				),
				Action: fetch.FetchAction,
			},
			{
				Name:      "convert",
				Usage:     "Convert a saved page or JavaScript asset",
				ArgsUsage: "[OUTPUT]",
				Flags: append(conversionFlags(),
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "Saved HTML page or JS asset (- for stdin)"},
				),
				Action: fetch.ConvertAction,
			},
			{
				Name:      "java",
				Usage:     "Emit Java lookup arrays from a CSV export",
				ArgsUsage: "[OUTPUT]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Value: models.DefaultBaseName + ".csv", Usage: "CSV written by fetch (- for stdin)"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "-", Usage: "Java output file (- for stdout)"},
				},
				Action: java.JavaAction,
			},
			{
				Name:      "lookup",
				Usage:     "Look up carriers in a SQLite export",
				ArgsUsage: "MCC [MNC]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Value: dbpkg.DefaultDBName, Usage: "SQLite file written with --format sqlite"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: string(serializer.FormatTable), Usage: "Output format"},
				},
				Action: db.LookupAction,
			},
		},
	}
}

// conversionFlags are shared by fetch and convert.
func conversionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format: " + serializer.FormatNames() + " (default csv)"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file, - for stdout (default mcc-mnc-table.<ext>)"},
		&cli.StringFlag{Name: "source", Usage: "Input kind: html or js (default html)"},
		&cli.BoolFlag{Name: "legacy", Usage: "Use the line-oriented <td> pattern instead of the HTML parser"},
		&cli.StringFlag{Name: "selector", Usage: "CSS selector of the data table (default " + models.DefaultSelector + ")"},
		&cli.StringFlag{Name: "marker", Usage: "Text preceding the array literal in a JS asset"},
		&cli.StringFlag{Name: "filter", Usage: `Keep matching records, e.g. "mcc:310|311,iso:us"`},
		&cli.BoolFlag{Name: "no-header", Usage: "Omit the CSV header row"},
	}
}

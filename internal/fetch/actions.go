package fetch

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/mcc-mnc-table/internal/common"
	"github.com/dtnitsch/mcc-mnc-table/models"
	"github.com/dtnitsch/mcc-mnc-table/pkg/fetcher"
	"github.com/dtnitsch/mcc-mnc-table/pkg/filter"
	"github.com/dtnitsch/mcc-mnc-table/pkg/serializer"
	"github.com/dtnitsch/mcc-mnc-table/pkg/storage"
	"github.com/urfave/cli/v2"
)

// FetchAction downloads the table page and writes its records.
func FetchAction(c *cli.Context) error {
	logger := common.LoggerFromContext(c)

	cfg, err := ResolveConfig(c)
	if err != nil {
		return fail(logger, "invalid configuration", err)
	}

	targetURL, err := common.ValidateURL(cfg.URL)
	if err != nil {
		return fail(logger, "invalid url", err)
	}

	f := fetcher.NewFetcher(fetcher.Options{Timeout: cfg.Timeout, UserAgent: cfg.UserAgent})
	logger.Info("Fetching table", "url", targetURL, "timeout", cfg.Timeout.String())
	body, err := f.GetBytes(c.Context, targetURL)
	if err != nil {
		return fail(logger, "failed to fetch table", err)
	}
	logger.Info("Fetched page", "url", targetURL, "bytes", len(body), "content_hash", common.ContentHash(body))

	return convert(c, logger, cfg, targetURL, body)
}

// ConvertAction runs the same pipeline over a saved page or asset.
func ConvertAction(c *cli.Context) error {
	logger := common.LoggerFromContext(c)

	cfg, err := ResolveConfig(c)
	if err != nil {
		return fail(logger, "invalid configuration", err)
	}

	input := c.String("input")
	s := newStorage(c)
	body, err := s.ReadFile(input)
	if err != nil {
		return fail(logger, "failed to read input", err)
	}
	logger.Info("Read input", "path", input, "bytes", len(body), "content_hash", common.ContentHash(body))

	return convert(c, logger, cfg, input, body)
}

func convert(c *cli.Context, logger *slog.Logger, cfg *models.Config, source string, body []byte) error {
	job, err := buildJob(c, cfg, source, body)
	if err != nil {
		return fail(logger, "invalid options", err)
	}

	result, err := run(c.Context, logger, job, newStorage(c))
	if err != nil {
		return fail(logger, "conversion failed", err)
	}

	logger.Info("Wrote records", result.LogAttrs()...)
	return nil
}

// ResolveConfig loads the config file and applies explicitly set flags on top.
func ResolveConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"), c.IsSet("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("url") {
		cfg.URL = c.String("url")
	}
	if c.IsSet("source") {
		cfg.Source = c.String("source")
	}
	if c.IsSet("selector") {
		cfg.Selector = c.String("selector")
	}
	if c.IsSet("marker") {
		cfg.Marker = c.String("marker")
	}
	if c.IsSet("legacy") {
		cfg.Legacy = c.Bool("legacy")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.Args().Present() {
		cfg.Output = c.Args().First()
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("user-agent") {
		cfg.UserAgent = c.String("user-agent")
	}
	if c.Bool("no-header") {
		header := false
		cfg.CSV.Header = &header
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

func buildJob(c *cli.Context, cfg *models.Config, source string, body []byte) (Job, error) {
	mode, err := models.ResolveParseMode(cfg.Source, cfg.Legacy)
	if err != nil {
		return Job{}, err
	}

	format, err := serializer.ParseFormat(cfg.Format)
	if err != nil {
		return Job{}, err
	}

	strategy, err := filter.ParseStrategy(c.String("filter"))
	if err != nil {
		return Job{}, fmt.Errorf("invalid filter: %w", err)
	}

	output := cfg.Output
	if output == "" {
		output = DefaultOutput(format)
	}

	return Job{
		Source: source,
		Request: models.ParseRequest{
			URL:      source,
			Body:     body,
			Mode:     mode,
			Selector: cfg.Selector,
			Marker:   cfg.Marker,
		},
		Filter:  strategy,
		Format:  format,
		Output:  output,
		Options: serializer.Options{CSVHeader: cfg.CSV.WantHeader()},
	}, nil
}

func newStorage(c *cli.Context) *storage.Storage {
	s := &storage.Storage{Stdin: os.Stdin, Stdout: os.Stdout}
	if c.App != nil {
		if c.App.Reader != nil {
			s.Stdin = c.App.Reader
		}
		if c.App.Writer != nil {
			s.Stdout = c.App.Writer
		}
	}
	return s
}

// fail logs err and converts it to a cli exit error with the matching code.
func fail(logger *slog.Logger, msg string, err error) error {
	logger.Error(msg, "error", err)
	return cli.Exit("", common.ExitCode(err))
}

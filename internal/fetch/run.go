package fetch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/dtnitsch/mcc-mnc-table/models"
	"github.com/dtnitsch/mcc-mnc-table/pkg/db"
	"github.com/dtnitsch/mcc-mnc-table/pkg/filter"
	"github.com/dtnitsch/mcc-mnc-table/pkg/parser"
	"github.com/dtnitsch/mcc-mnc-table/pkg/serializer"
	"github.com/dtnitsch/mcc-mnc-table/pkg/storage"
)

// run extracts, coerces, filters and writes the records of one document.
func run(ctx context.Context, logger *slog.Logger, job Job, s *storage.Storage) (Result, error) {
	result := Result{Source: job.Source, Output: job.Output, Format: job.Format}

	p := &parser.Parser{Logger: logger}
	scanner, err := p.Parse(job.Request)
	if err != nil {
		return result, err
	}

	records, dropped := models.CoerceRows(scanner.All(), logger)
	if err := scanner.Err(); err != nil {
		return result, &models.ParseError{Reason: "failed to read rows", Err: err}
	}
	result.Skipped = scanner.Skipped()
	result.Dropped = dropped
	logger.Info("Extracted records", "records", len(records), "skipped", result.Skipped, "dropped", dropped)

	kept := filter.Records(records, job.Filter)
	result.Filtered = len(records) - len(kept)
	result.Records = len(kept)

	size, err := emit(ctx, logger, job, kept, s)
	if err != nil {
		return result, err
	}
	result.FileSizeBytes = size
	return result, nil
}

// emit writes records to job.Output and returns the number of bytes written.
func emit(ctx context.Context, logger *slog.Logger, job Job, records []models.CarrierRecord, s *storage.Storage) (int64, error) {
	if !job.Format.Streams() {
		return emitSQLite(ctx, logger, job, records, s)
	}

	var buf bytes.Buffer
	if err := serializer.Write(&buf, job.Format, records, job.Options); err != nil {
		return 0, err
	}
	if err := s.SaveFile(job.Output, buf.Bytes()); err != nil {
		return 0, err
	}
	return int64(buf.Len()), nil
}

func emitSQLite(ctx context.Context, logger *slog.Logger, job Job, records []models.CarrierRecord, s *storage.Storage) (int64, error) {
	if job.Output == storage.StdioPath {
		return 0, fmt.Errorf("format %s needs a file path, not stdout", job.Format)
	}
	if s.HasFile(job.Output) {
		if stats, err := s.GetFileStats(job.Output); err == nil {
			logger.Info("Replacing existing export", "path", job.Output,
				"bytes", stats.SizeBytes, "modified", stats.ModTime)
		}
	}

	database, err := db.Open(job.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	exportID, err := database.ReplaceCarriers(ctx, job.Source, records)
	if err != nil {
		return 0, err
	}
	logger.Debug("Stored export", "db", database.Path(), "export_id", exportID)

	stats, err := s.GetFileStats(database.Path())
	if err != nil {
		return 0, err
	}
	return stats.SizeBytes, nil
}

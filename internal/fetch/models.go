package fetch

import (
	"github.com/dtnitsch/mcc-mnc-table/models"
	"github.com/dtnitsch/mcc-mnc-table/pkg/filter"
	"github.com/dtnitsch/mcc-mnc-table/pkg/serializer"
)

// Job is one pass of the pipeline over an already loaded document.
type Job struct {
	Source  string // URL or input path, recorded with SQLite exports
	Request models.ParseRequest
	Filter  *filter.Strategy
	Format  serializer.Format
	Output  string
	Options serializer.Options
}

// Result holds the outcome of a job.
type Result struct {
	Source        string
	Output        string
	Format        serializer.Format
	Records       int // written
	Skipped       int // rows with missing cells
	Dropped       int // rows that failed coercion
	Filtered      int // records removed by the filter
	FileSizeBytes int64
}

// LogAttrs returns the result as slog key/value pairs.
func (r Result) LogAttrs() []any {
	return []any{
		"source", r.Source,
		"output", r.Output,
		"format", string(r.Format),
		"records", r.Records,
		"skipped", r.Skipped,
		"dropped", r.Dropped,
		"filtered", r.Filtered,
		"bytes", r.FileSizeBytes,
	}
}

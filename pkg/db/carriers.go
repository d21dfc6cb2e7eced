package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/mcc-mnc-table/models"
)

// Export describes the most recent write of the carriers table.
type Export struct {
	ExportID  int64
	SourceURL string
	RowCount  int
	CreatedAt time.Time
}

// ReplaceCarriers swaps the table contents for records in one transaction
// and returns the new export ID.
func (db *DB) ReplaceCarriers(ctx context.Context, sourceURL string, records []models.CarrierRecord) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // No-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM carriers"); err != nil {
		return 0, fmt.Errorf("failed to clear carriers: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO exports (source_url, row_count) VALUES (?, ?)
	`, sourceURL, len(records))
	if err != nil {
		return 0, fmt.Errorf("failed to insert export: %w", err)
	}
	exportID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get export ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO carriers (export_id, position, mcc, mnc, iso, country, country_code, network)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare carrier insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		var countryCode sql.NullInt64
		if r.HasCountryCode() {
			countryCode = sql.NullInt64{Int64: int64(r.CountryCode), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, exportID, i, r.MCC, r.MNC.String(), r.ISO, r.Country, countryCode, r.Network); err != nil {
			return 0, fmt.Errorf("failed to insert carrier %d-%s: %w", r.MCC, r.MNC, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit carriers: %w", err)
	}
	return exportID, nil
}

// ListCarriers returns every stored record in source order.
func (db *DB) ListCarriers(ctx context.Context) ([]models.CarrierRecord, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT mcc, mnc, iso, country, country_code, network
		FROM carriers ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query carriers: %w", err)
	}
	return scanCarriers(rows)
}

// LookupCarrier returns the records for mcc, narrowed to mnc when it is not empty.
func (db *DB) LookupCarrier(ctx context.Context, mcc int, mnc string) ([]models.CarrierRecord, error) {
	query := `
		SELECT mcc, mnc, iso, country, country_code, network
		FROM carriers WHERE mcc = ?`
	args := []any{mcc}
	if mnc != "" {
		query += " AND mnc = ?"
		args = append(args, mnc)
	}
	query += " ORDER BY position"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to look up carrier: %w", err)
	}
	return scanCarriers(rows)
}

// LastExport returns the most recent export, or nil when nothing was written yet.
func (db *DB) LastExport(ctx context.Context) (*Export, error) {
	var e Export
	err := db.QueryRowContext(ctx, `
		SELECT export_id, source_url, row_count, created_at
		FROM exports ORDER BY export_id DESC LIMIT 1
	`).Scan(&e.ExportID, &e.SourceURL, &e.RowCount, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last export: %w", err)
	}
	return &e, nil
}

func scanCarriers(rows *sql.Rows) ([]models.CarrierRecord, error) {
	defer rows.Close()

	records := []models.CarrierRecord{}
	for rows.Next() {
		var (
			r           models.CarrierRecord
			mnc         string
			countryCode sql.NullInt64
		)
		if err := rows.Scan(&r.MCC, &mnc, &r.ISO, &r.Country, &countryCode, &r.Network); err != nil {
			return nil, fmt.Errorf("failed to scan carrier: %w", err)
		}
		r.MNC = models.MNC(mnc)
		if countryCode.Valid {
			r.CountryCode = int(countryCode.Int64)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate carriers: %w", err)
	}
	return records, nil
}

package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/mcc-mnc-table/models"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

var testRecords = []models.CarrierRecord{
	{MCC: 310, MNC: "260", ISO: "US", Country: "United States", CountryCode: 1, Network: "T-Mobile"},
	{MCC: 310, MNC: "410", ISO: "US", Country: "United States", CountryCode: 1, Network: "AT&T"},
	{MCC: 234, MNC: "01", ISO: "GB", Country: "United Kingdom", CountryCode: 44, Network: "Vectone Mobile"},
	{MCC: 901, MNC: models.MNCNotAvailable, ISO: "n/a", Country: "International Networks", Network: "Unknown"},
}

func TestReplaceCarriers_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	exportID, err := db.ReplaceCarriers(ctx, "https://mcc-mnc.com/", testRecords)
	require.NoError(t, err)
	require.NotZero(t, exportID)

	got, err := db.ListCarriers(ctx)
	require.NoError(t, err)
	require.Equal(t, testRecords, got)
}

func TestReplaceCarriers_ReplacesPreviousContents(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	first, err := db.ReplaceCarriers(ctx, "https://mcc-mnc.com/", testRecords)
	require.NoError(t, err)

	second, err := db.ReplaceCarriers(ctx, "file://page.html", testRecords[:1])
	require.NoError(t, err)
	require.Greater(t, second, first)

	got, err := db.ListCarriers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "T-Mobile", got[0].Network)

	last, err := db.LastExport(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	require.Equal(t, second, last.ExportID)
	require.Equal(t, "file://page.html", last.SourceURL)
	require.Equal(t, 1, last.RowCount)
}

func TestReplaceCarriers_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	_, err := db.ReplaceCarriers(ctx, "https://mcc-mnc.com/", nil)
	require.NoError(t, err)

	got, err := db.ListCarriers(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestLookupCarrier(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	_, err := db.ReplaceCarriers(ctx, "https://mcc-mnc.com/", testRecords)
	require.NoError(t, err)

	tests := []struct {
		name     string
		mcc      int
		mnc      string
		networks []string
	}{
		{name: "mcc only", mcc: 310, networks: []string{"T-Mobile", "AT&T"}},
		{name: "mcc and mnc", mcc: 310, mnc: "410", networks: []string{"AT&T"}},
		{name: "leading zero mnc", mcc: 234, mnc: "01", networks: []string{"Vectone Mobile"}},
		{name: "mnc without leading zero does not match", mcc: 234, mnc: "1"},
		{name: "unknown mcc", mcc: 999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.LookupCarrier(ctx, tt.mcc, tt.mnc)
			require.NoError(t, err)
			var networks []string
			for _, r := range got {
				networks = append(networks, r.Network)
			}
			require.Equal(t, tt.networks, networks)
		})
	}
}

func TestLastExport_NoneYet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	last, err := db.LastExport(context.Background())
	require.NoError(t, err)
	require.Nil(t, last)
}

func TestOpen_CreatesSchemaOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carriers.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, path, db.Path())
	_, err = db.ReplaceCarriers(context.Background(), "https://mcc-mnc.com/", testRecords)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening finds the existing schema and data
	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	got, err := db.ListCarriers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(testRecords))
}

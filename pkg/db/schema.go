package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Exports: one row per write of the carriers table
CREATE TABLE IF NOT EXISTS exports (
    export_id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_url TEXT NOT NULL,
    row_count INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Carriers: the records of the latest export, in source order
CREATE TABLE IF NOT EXISTS carriers (
    carrier_id INTEGER PRIMARY KEY AUTOINCREMENT,
    export_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    mcc INTEGER NOT NULL,
    mnc TEXT NOT NULL,           -- source text, keeps leading zeros and n/a
    iso TEXT NOT NULL,
    country TEXT NOT NULL,
    country_code INTEGER,        -- NULL when absent
    network TEXT NOT NULL,
    FOREIGN KEY (export_id) REFERENCES exports(export_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_carriers_mcc ON carriers(mcc);
CREATE INDEX IF NOT EXISTS idx_carriers_mcc_mnc ON carriers(mcc, mnc);
`

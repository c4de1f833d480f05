package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:drl.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/drl?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS grading_periods (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  start_at INTEGER,
  end_at INTEGER,
  is_default INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS drl_sheets (
  id TEXT PRIMARY KEY,
  student_id TEXT NOT NULL,
  period_id TEXT NOT NULL,
  self_score INTEGER NOT NULL DEFAULT 0,
  class_score INTEGER NOT NULL DEFAULT 0,
  bch_score INTEGER NOT NULL DEFAULT 0,
  faculty_score INTEGER NOT NULL DEFAULT 0,
  final_score INTEGER NOT NULL DEFAULT 0,
  details_json TEXT NOT NULL,
  status TEXT NOT NULL,
  updated_at INTEGER NOT NULL,
  UNIQUE (student_id, period_id)
);
CREATE INDEX IF NOT EXISTS idx_drl_sheets_period ON drl_sheets(period_id);

CREATE TABLE IF NOT EXISTS users (
  username TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  pass_hash TEXT NOT NULL,
  role TEXT NOT NULL,
  class_id TEXT
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS grading_periods (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  start_at BIGINT,
  end_at BIGINT,
  is_default BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS drl_sheets (
  id TEXT PRIMARY KEY,
  student_id TEXT NOT NULL,
  period_id TEXT NOT NULL,
  self_score INTEGER NOT NULL DEFAULT 0,
  class_score INTEGER NOT NULL DEFAULT 0,
  bch_score INTEGER NOT NULL DEFAULT 0,
  faculty_score INTEGER NOT NULL DEFAULT 0,
  final_score INTEGER NOT NULL DEFAULT 0,
  details_json TEXT NOT NULL,
  status TEXT NOT NULL,
  updated_at BIGINT NOT NULL,
  UNIQUE (student_id, period_id)
);
CREATE INDEX IF NOT EXISTS idx_drl_sheets_period ON drl_sheets(period_id);

CREATE TABLE IF NOT EXISTS users (
  username TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  pass_hash TEXT NOT NULL,
  role TEXT NOT NULL,
  class_id TEXT
);
`

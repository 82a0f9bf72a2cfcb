package repositories

import (
	"context"
	"database/sql"
	"eld-trip-service/internal/platform/db"
	"errors"
	"fmt"
)

type columnTypes struct {
	timestamp string
	float     string
	json      string
}

var dialectTypes = map[db.Dialect]columnTypes{
	db.SQLite:   {timestamp: "TIMESTAMP", float: "REAL", json: "TEXT"},
	db.Postgres: {timestamp: "TIMESTAMPTZ", float: "DOUBLE PRECISION", json: "JSONB"},
}

// Initialize the database schema for trips, logs and the geocode cache.
func InitSchema(ctx context.Context, conn *sql.DB, dialect db.Dialect) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	types, ok := dialectTypes[dialect]
	if !ok {
		return fmt.Errorf("init schema: unsupported dialect %q", dialect)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTripsQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS trips (
		id TEXT PRIMARY KEY,
		start_location TEXT NOT NULL,
		pickup_location TEXT NOT NULL,
		dropoff_location TEXT NOT NULL,
		start_time %[1]s NOT NULL,
		current_cycle_hours_used %[2]s NOT NULL,
		distance_miles %[2]s NOT NULL,
		duration_hours %[2]s NOT NULL,
		route_data %[3]s NOT NULL,
		created_at %[1]s NOT NULL
	);
	`, types.timestamp, types.float, types.json)

	createLogsQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS eld_logs (
		id TEXT PRIMARY KEY,
		trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		timestamp %[1]s NOT NULL,
		timespent %[2]s NOT NULL,
		status TEXT NOT NULL,
		action TEXT NOT NULL,
		lat %[2]s NOT NULL,
		lon %[2]s NOT NULL
	);
	`, types.timestamp, types.float)

	createGeocodeCacheQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address TEXT PRIMARY KEY,
		lon %[1]s NOT NULL,
		lat %[1]s NOT NULL
	);
	`, types.float)

	createIndexQuery := `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_eld_logs_trip_seq
	ON eld_logs(trip_id, seq);
	`

	statements := []string{
		createTripsQuery,
		createLogsQuery,
		createGeocodeCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

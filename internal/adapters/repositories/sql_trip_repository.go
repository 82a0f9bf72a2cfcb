package repositories

import (
	"context"
	"database/sql"
	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/platform/db"
	"eld-trip-service/internal/platform/obs"
	"eld-trip-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQL-backed implementation of the TripRepository port for SQLite and Postgres.
type SQLTripRepository struct {
	DB      *sql.DB
	Dialect db.Dialect
	now     func() time.Time
}

func NewSQLTripRepository(conn *sql.DB, dialect db.Dialect) *SQLTripRepository {
	return &SQLTripRepository{DB: conn, Dialect: dialect, now: time.Now}
}

const selectTripColumns = `
	SELECT
		id,
		start_location,
		pickup_location,
		dropoff_location,
		start_time,
		current_cycle_hours_used,
		distance_miles,
		duration_hours,
		route_data
	FROM trips
`

// Store the trip and all of its logs in a single transaction.
func (r *SQLTripRepository) CreateTrip(
	ctx context.Context,
	trip *domain.Trip,
	logs []domain.LogEntry,
) (_ []domain.ELDLog, err error) {
	defer obs.Time(ctx, "trips.repo.CreateTrip")(&err)

	if r.DB == nil {
		return nil, errors.New("create trip: DB is nil")
	}
	if trip == nil {
		return nil, errors.New("create trip: trip must be non-nil")
	}

	route := make([][]float64, 0, len(trip.Route))
	for _, c := range trip.Route {
		route = append(route, c.CoordsToList())
	}
	routeJSON, err := json.Marshal(route)
	if err != nil {
		return nil, fmt.Errorf("create trip: encode route: %w", err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create trip: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, r.Dialect.Rebind(`
	INSERT INTO trips (
		id,
		start_location,
		pickup_location,
		dropoff_location,
		start_time,
		current_cycle_hours_used,
		distance_miles,
		duration_hours,
		route_data,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`),
		trip.ID.String(),
		trip.StartLocation,
		trip.PickupLocation,
		trip.DropoffLocation,
		r.timeArg(trip.StartTime),
		trip.CurrentCycleHoursUsed,
		trip.DistanceMiles,
		trip.DurationHours,
		string(routeJSON),
		r.timeArg(r.now()),
	)
	if err != nil {
		return nil, fmt.Errorf("create trip: insert trip id=%s: %w", trip.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, r.Dialect.Rebind(`
	INSERT INTO eld_logs (
		id,
		trip_id,
		seq,
		timestamp,
		timespent,
		status,
		action,
		lat,
		lon
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`))
	if err != nil {
		return nil, fmt.Errorf("create trip: prepare log insert: %w", err)
	}
	defer stmt.Close()

	out := make([]domain.ELDLog, 0, len(logs))
	for i, entry := range logs {
		l := domain.ELDLog{ID: uuid.New(), TripID: trip.ID, LogEntry: entry}
		_, err := stmt.ExecContext(ctx,
			l.ID.String(),
			trip.ID.String(),
			i,
			r.timeArg(entry.Timestamp),
			entry.TimeSpent.Minutes(),
			string(entry.Status),
			string(entry.Action),
			entry.Location.Lat,
			entry.Location.Lon,
		)
		if err != nil {
			return nil, fmt.Errorf("create trip: insert log #%d: %w", i, err)
		}
		out = append(out, l)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create trip: commit tx: %w", err)
	}

	return out, nil
}

func (r *SQLTripRepository) GetTrip(ctx context.Context, id uuid.UUID) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "trips.repo.GetTrip")(&err)

	if r.DB == nil {
		return nil, errors.New("get trip: DB is nil")
	}

	row := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(selectTripColumns+` WHERE id = ?;`), id.String())
	trip, err := scanTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get trip id=%s: %w", id, ports.ErrTripNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get trip id=%s: %w", id, err)
	}

	return trip, nil
}

func (r *SQLTripRepository) ListTrips(ctx context.Context) (_ []*domain.Trip, err error) {
	defer obs.Time(ctx, "trips.repo.ListTrips")(&err)

	if r.DB == nil {
		return nil, errors.New("list trips: DB is nil")
	}

	rows, err := r.DB.QueryContext(ctx, selectTripColumns+` ORDER BY created_at, id;`)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0, 16)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("list trips: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}

func (r *SQLTripRepository) DeleteTrip(ctx context.Context, id uuid.UUID) (err error) {
	defer obs.Time(ctx, "trips.repo.DeleteTrip")(&err)

	if r.DB == nil {
		return errors.New("delete trip: DB is nil")
	}

	// eld_logs rows go with the trip through ON DELETE CASCADE.
	res, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(`DELETE FROM trips WHERE id = ?;`), id.String())
	if err != nil {
		return fmt.Errorf("delete trip id=%s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete trip id=%s: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete trip id=%s: %w", id, ports.ErrTripNotFound)
	}

	return nil
}

const selectLogColumns = `
	SELECT
		id,
		trip_id,
		timestamp,
		timespent,
		status,
		action,
		lat,
		lon
	FROM eld_logs
`

func (r *SQLTripRepository) ListLogs(ctx context.Context, tripID uuid.UUID) (_ []domain.ELDLog, err error) {
	defer obs.Time(ctx, "trips.repo.ListLogs")(&err)

	if r.DB == nil {
		return nil, errors.New("list logs: DB is nil")
	}

	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(selectLogColumns+` WHERE trip_id = ? ORDER BY seq;`), tripID.String())
	if err != nil {
		return nil, fmt.Errorf("list logs: query eld_logs table: %w", err)
	}
	defer rows.Close()

	logs := make([]domain.ELDLog, 0, 16)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("list logs: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list logs: row iteration: %w", err)
	}

	return logs, nil
}

func (r *SQLTripRepository) GetLog(ctx context.Context, id uuid.UUID) (_ domain.ELDLog, err error) {
	defer obs.Time(ctx, "trips.repo.GetLog")(&err)

	if r.DB == nil {
		return domain.ELDLog{}, errors.New("get log: DB is nil")
	}

	row := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(selectLogColumns+` WHERE id = ?;`), id.String())
	l, err := scanLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ELDLog{}, fmt.Errorf("get log id=%s: %w", id, ports.ErrLogNotFound)
	}
	if err != nil {
		return domain.ELDLog{}, fmt.Errorf("get log id=%s: %w", id, err)
	}

	return l, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (domain.ELDLog, error) {
	var (
		id, tripID, status, action string
		ts                         any
		minutes                    float64
		l                          domain.ELDLog
	)
	if err := row.Scan(&id, &tripID, &ts, &minutes, &status, &action, &l.Location.Lat, &l.Location.Lon); err != nil {
		return domain.ELDLog{}, err
	}

	var err error
	if l.ID, err = uuid.Parse(id); err != nil {
		return domain.ELDLog{}, fmt.Errorf("scan log: parse id %q: %w", id, err)
	}
	if l.TripID, err = uuid.Parse(tripID); err != nil {
		return domain.ELDLog{}, fmt.Errorf("scan log %s: parse trip id %q: %w", id, tripID, err)
	}
	if l.Timestamp, err = parseTime(ts); err != nil {
		return domain.ELDLog{}, fmt.Errorf("scan log %s: %w", id, err)
	}
	l.TimeSpent = time.Duration(minutes * float64(time.Minute))
	l.Status = domain.DutyStatus(status)
	l.Action = domain.Action(action)
	if !l.Status.Valid() || !l.Action.Valid() {
		return domain.ELDLog{}, fmt.Errorf("scan log %s: unknown status/action %q/%q", id, status, action)
	}

	return l, nil
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	var (
		id        string
		startTime any
		routeJSON []byte
		t         domain.Trip
	)

	err := row.Scan(
		&id,
		&t.StartLocation,
		&t.PickupLocation,
		&t.DropoffLocation,
		&startTime,
		&t.CurrentCycleHoursUsed,
		&t.DistanceMiles,
		&t.DurationHours,
		&routeJSON,
	)
	if err != nil {
		return nil, err
	}

	if t.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("scan trip: parse id %q: %w", id, err)
	}
	if t.StartTime, err = parseTime(startTime); err != nil {
		return nil, fmt.Errorf("scan trip %s: %w", id, err)
	}

	var route [][]float64
	if err := json.Unmarshal(routeJSON, &route); err != nil {
		return nil, fmt.Errorf("scan trip %s: decode route: %w", id, err)
	}
	t.Route = make([]domain.Coordinates, 0, len(route))
	for _, pair := range route {
		c, ok := domain.CoordinatesFromList(pair)
		if !ok {
			return nil, fmt.Errorf("scan trip %s: invalid route point", id)
		}
		t.Route = append(t.Route, c)
	}

	return &t, nil
}

// timeArg binds timestamps as RFC 3339 text for SQLite and natively for Postgres.
func (r *SQLTripRepository) timeArg(t time.Time) any {
	if r.Dialect == db.SQLite {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return t.UTC()
}

// parseTime accepts the driver-native time.Time or a textual timestamp.
func parseTime(v any) (time.Time, error) {
	var s string
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return time.Time{}, fmt.Errorf("parse time: unsupported type %T", v)
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse time: unrecognized timestamp %q", s)
}

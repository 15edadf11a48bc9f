// Package stats persists driver career statistics and save-engine history in
// a local sqlite database.
package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/pitwall-app/pitwall/app/setting/request"
)

// DriverRecord accumulates career totals for one track and vehicle pairing.
// When passed to UpsertDriverStats the numeric fields are deltas added to the
// stored row; PBLapMS is a candidate that only replaces a slower (or absent)
// personal best. Zero PBLapMS means no valid lap.
type DriverRecord struct {
	Track       string    `json:"track"`
	Vehicle     string    `json:"vehicle"`
	PBLapMS     int64     `json:"pb_lap_ms"`
	Meters      float64   `json:"meters"`
	Seconds     float64   `json:"seconds"`
	Liters      float64   `json:"liters"`
	ValidLaps   int64     `json:"valid_laps"`
	InvalidLaps int64     `json:"invalid_laps"`
	Penalties   int64     `json:"penalties"`
	Races       int64     `json:"races"`
	Wins        int64     `json:"wins"`
	Podiums     int64     `json:"podiums"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SQLiteStore implements persistence using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to set WAL mode: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initialize(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close db: %v)", err, closeErr)
		}
		return nil, err
	}
	return s, nil
}

// initialize creates the database schema.
func (s *SQLiteStore) initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS driver_stats (
			track TEXT NOT NULL,
			vehicle TEXT NOT NULL,
			pb_lap_ms INTEGER NOT NULL DEFAULT 0,
			meters REAL NOT NULL DEFAULT 0,
			seconds REAL NOT NULL DEFAULT 0,
			liters REAL NOT NULL DEFAULT 0,
			valid_laps INTEGER NOT NULL DEFAULT 0,
			invalid_laps INTEGER NOT NULL DEFAULT 0,
			penalties INTEGER NOT NULL DEFAULT 0,
			races INTEGER NOT NULL DEFAULT 0,
			wins INTEGER NOT NULL DEFAULT 0,
			podiums INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (track, vehicle)
		)`,
		`CREATE TABLE IF NOT EXISTS save_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL,
			file TEXT NOT NULL,
			outcome TEXT NOT NULL,
			attempts INTEGER NOT NULL,
			took_ms INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_save_events_created ON save_events(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_driver_stats_updated ON driver_stats(updated_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// driverRow is the scan target, timestamps kept as unix seconds.
type driverRow struct {
	Track       string  `db:"track"`
	Vehicle     string  `db:"vehicle"`
	PBLapMS     int64   `db:"pb_lap_ms"`
	Meters      float64 `db:"meters"`
	Seconds     float64 `db:"seconds"`
	Liters      float64 `db:"liters"`
	ValidLaps   int64   `db:"valid_laps"`
	InvalidLaps int64   `db:"invalid_laps"`
	Penalties   int64   `db:"penalties"`
	Races       int64   `db:"races"`
	Wins        int64   `db:"wins"`
	Podiums     int64   `db:"podiums"`
	UpdatedAt   int64   `db:"updated_at"`
}

func (r driverRow) record() DriverRecord {
	rec := DriverRecord{
		Track:       r.Track,
		Vehicle:     r.Vehicle,
		PBLapMS:     r.PBLapMS,
		Meters:      r.Meters,
		Seconds:     r.Seconds,
		Liters:      r.Liters,
		ValidLaps:   r.ValidLaps,
		InvalidLaps: r.InvalidLaps,
		Penalties:   r.Penalties,
		Races:       r.Races,
		Wins:        r.Wins,
		Podiums:     r.Podiums,
	}
	if r.UpdatedAt > 0 {
		rec.UpdatedAt = time.Unix(r.UpdatedAt, 0)
	}
	return rec
}

// UpsertDriverStats adds the record's deltas to the stored row for its track
// and vehicle, keeping the faster personal best. A missing row is created.
func (s *SQLiteStore) UpsertDriverStats(ctx context.Context, rec DriverRecord) error {
	if rec.Track == "" || rec.Vehicle == "" {
		return fmt.Errorf("driver stats need both track and vehicle")
	}
	at := rec.UpdatedAt
	if at.IsZero() {
		at = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO driver_stats
			(track, vehicle, pb_lap_ms, meters, seconds, liters,
			 valid_laps, invalid_laps, penalties, races, wins, podiums, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(track, vehicle) DO UPDATE SET
			pb_lap_ms = CASE
				WHEN excluded.pb_lap_ms <= 0 THEN driver_stats.pb_lap_ms
				WHEN driver_stats.pb_lap_ms <= 0 THEN excluded.pb_lap_ms
				ELSE MIN(driver_stats.pb_lap_ms, excluded.pb_lap_ms)
			END,
			meters = driver_stats.meters + excluded.meters,
			seconds = driver_stats.seconds + excluded.seconds,
			liters = driver_stats.liters + excluded.liters,
			valid_laps = driver_stats.valid_laps + excluded.valid_laps,
			invalid_laps = driver_stats.invalid_laps + excluded.invalid_laps,
			penalties = driver_stats.penalties + excluded.penalties,
			races = driver_stats.races + excluded.races,
			wins = driver_stats.wins + excluded.wins,
			podiums = driver_stats.podiums + excluded.podiums,
			updated_at = excluded.updated_at`,
		rec.Track, rec.Vehicle, rec.PBLapMS, rec.Meters, rec.Seconds, rec.Liters,
		rec.ValidLaps, rec.InvalidLaps, rec.Penalties, rec.Races, rec.Wins, rec.Podiums, at.Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert driver stats for %s/%s: %w", rec.Track, rec.Vehicle, err)
	}
	return nil
}

// GetDriverStats returns the stored totals for a track and vehicle pairing.
// The error wraps sql.ErrNoRows when nothing was recorded yet.
func (s *SQLiteStore) GetDriverStats(ctx context.Context, track, vehicle string) (DriverRecord, error) {
	var row driverRow
	err := s.db.GetContext(ctx, &row, `
		SELECT track, vehicle, pb_lap_ms, meters, seconds, liters,
		       valid_laps, invalid_laps, penalties, races, wins, podiums, updated_at
		FROM driver_stats WHERE track = ? AND vehicle = ?`, track, vehicle)
	if err != nil {
		return DriverRecord{}, fmt.Errorf("no stats for %s/%s: %w", track, vehicle, err)
	}
	return row.record(), nil
}

// ListDriverStats returns all records, optionally filtered by track, most
// recently updated first.
func (s *SQLiteStore) ListDriverStats(ctx context.Context, track string) ([]DriverRecord, error) {
	query := `
		SELECT track, vehicle, pb_lap_ms, meters, seconds, liters,
		       valid_laps, invalid_laps, penalties, races, wins, podiums, updated_at
		FROM driver_stats`
	args := []any{}
	if track != "" {
		query += " WHERE track = ?"
		args = append(args, track)
	}
	query += " ORDER BY updated_at DESC, track, vehicle"

	var rows []driverRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query driver stats: %w", err)
	}
	res := make([]DriverRecord, 0, len(rows))
	for _, r := range rows {
		res = append(res, r.record())
	}
	return res, nil
}

// ListTracks returns the distinct track names with recorded stats.
func (s *SQLiteStore) ListTracks(ctx context.Context) ([]string, error) {
	tracks := []string{}
	if err := s.db.SelectContext(ctx, &tracks, `SELECT DISTINCT track FROM driver_stats ORDER BY track`); err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	return tracks, nil
}

// RecordSave logs one completed save pass. This is the engine's History
// collaborator.
func (s *SQLiteStore) RecordSave(ctx context.Context, ev request.SaveEvent) error {
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO save_events (category, file, outcome, attempts, took_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ev.Category, ev.File, ev.Outcome.String(), ev.Attempts, ev.Took.Milliseconds(), at.Unix())
	if err != nil {
		return fmt.Errorf("failed to record save event: %w", err)
	}
	return nil
}

type saveEventRow struct {
	ID        int64  `db:"id"`
	Category  string `db:"category"`
	File      string `db:"file"`
	Outcome   string `db:"outcome"`
	Attempts  int    `db:"attempts"`
	TookMS    int64  `db:"took_ms"`
	CreatedAt int64  `db:"created_at"`
}

// ListSaveEvents returns the most recent save events, newest first, capped by
// limit (zero or negative picks 100).
func (s *SQLiteStore) ListSaveEvents(ctx context.Context, limit int) ([]request.SaveEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []saveEventRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, category, file, outcome, attempts, took_ms, created_at
		FROM save_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query save events: %w", err)
	}

	res := make([]request.SaveEvent, 0, len(rows))
	for _, r := range rows {
		outcome, err := request.ParseOutcome(r.Outcome)
		if err != nil {
			log.Printf("[WARN] invalid outcome %q for save event %d: %v", r.Outcome, r.ID, err)
			continue
		}
		res = append(res, request.SaveEvent{
			Category: r.Category,
			File:     r.File,
			Outcome:  outcome,
			Attempts: r.Attempts,
			Took:     time.Duration(r.TookMS) * time.Millisecond,
			At:       time.Unix(r.CreatedAt, 0),
		})
	}
	return res, nil
}

// TrimSaveEvents drops everything beyond the newest keep rows and reports how
// many were removed.
func (s *SQLiteStore) TrimSaveEvents(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM save_events WHERE id NOT IN
			(SELECT id FROM save_events ORDER BY id DESC LIMIT ?)`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to trim save events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count trimmed save events: %w", err)
	}
	return n, nil
}

// Vacuum compacts the database file.
func (s *SQLiteStore) Vacuum(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("failed to vacuum: %w", err)
	}
	return nil
}

// NotFound reports whether the error means a missing record.
func NotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

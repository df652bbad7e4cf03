/*
Package sqlite provides a SQLite-backed implementation of worklog.Store.

PURPOSE:
  Persists work log entries, per-user rates, and access requests using
  SQLite. In production the same patterns apply to PostgreSQL - only minor
  SQL dialect differences.

KEY TABLES:
  work_logs:       One row per shift, computed fields included
  user_settings:   One row per user's tariff
  access_requests: Sign-up approval records

COMPUTED FIELDS:
  The amount, rate_applied, duration, and is_gross_calculation columns are
  written by the calling layer after it runs the calculator. The store
  never derives them; a stored amount is authoritative until the entry is
  edited again.

DECIMALS AND DATES:
  Monetary values are stored as decimal TEXT, never as floats, so what was
  calculated is exactly what survives a round trip. Calendar dates are
  stored as "YYYY-MM-DD" TEXT. An unparsable date scans to the zero Day,
  which the aggregation layer skips silently - a bad row degrades, it does
  not poison a summary or fail a request.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block and there's a single writer at a time.

USAGE:
  store, err := sqlite.New("./data/jornada.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - worklog/store.go: Interface definitions
  - worklog/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/worklog"
)

// Store implements worklog.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ worklog.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Work logs (one row per shift; computed fields written by the caller)
	CREATE TABLE IF NOT EXISTS work_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		date TEXT,
		start_time TEXT,
		end_time TEXT,
		start_date TEXT,
		end_date TEXT,
		description TEXT NOT NULL DEFAULT '',
		has_coordination INTEGER NOT NULL DEFAULT 0,
		has_night INTEGER NOT NULL DEFAULT 0,
		arrives_prior INTEGER NOT NULL DEFAULT 0,
		amount TEXT NOT NULL DEFAULT '0',
		rate_applied TEXT NOT NULL DEFAULT '0',
		duration TEXT NOT NULL DEFAULT '0',
		is_gross_calculation INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_work_logs_user
		ON work_logs(user_id);

	-- Listing is newest-shift-first; date covers particular entries,
	-- start_date covers tutorials
	CREATE INDEX IF NOT EXISTS idx_work_logs_user_date
		ON work_logs(user_id, date DESC, start_date DESC);

	-- User rate settings
	CREATE TABLE IF NOT EXISTS user_settings (
		user_id TEXT PRIMARY KEY,
		hourly_rate TEXT NOT NULL DEFAULT '0',
		daily_rate TEXT NOT NULL DEFAULT '0',
		coordination_rate TEXT NOT NULL DEFAULT '0',
		night_rate TEXT NOT NULL DEFAULT '0',
		is_gross INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL
	);

	-- Access requests (sign-up approval workflow)
	CREATE TABLE IF NOT EXISTS access_requests (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_access_requests_status
		ON access_requests(status);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// WORK LOGS
// =============================================================================

// SaveEntry upserts a work log entry, computed fields included.
func (s *Store) SaveEntry(ctx context.Context, e worklog.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var date, startTime, endTime, startDate, endDate string
	if e.Particular != nil {
		date = e.Particular.Date.String()
		startTime = e.Particular.StartTime
		endTime = e.Particular.EndTime
	}
	if e.Tutorial != nil {
		startDate = e.Tutorial.StartDate.String()
		endDate = e.Tutorial.EndDate.String()
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
		INSERT INTO work_logs (
			id, user_id, type, date, start_time, end_time, start_date, end_date,
			description, has_coordination, has_night, arrives_prior,
			amount, rate_applied, duration, is_gross_calculation, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			type = excluded.type,
			date = excluded.date,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			description = excluded.description,
			has_coordination = excluded.has_coordination,
			has_night = excluded.has_night,
			arrives_prior = excluded.arrives_prior,
			amount = excluded.amount,
			rate_applied = excluded.rate_applied,
			duration = excluded.duration,
			is_gross_calculation = excluded.is_gross_calculation
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.UserID, string(e.Type),
		date, startTime, endTime, startDate, endDate,
		e.Description, boolToInt(e.HasCoordination), boolToInt(e.HasNight), boolToInt(e.ArrivesPrior),
		e.Computed.Amount.Value.String(), e.Computed.RateApplied.String(),
		e.Computed.Duration.Value.String(), boolToInt(e.Computed.IsGross),
		createdAt.Format(time.RFC3339),
	)
	return err
}

const entryColumns = `id, user_id, type, date, start_time, end_time, start_date, end_date,
	description, has_coordination, has_night, arrives_prior,
	amount, rate_applied, duration, is_gross_calculation, created_at`

// GetEntry retrieves a work log entry by ID.
func (s *Store) GetEntry(ctx context.Context, id string) (worklog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM work_logs WHERE id = ?", id)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return worklog.Entry{}, worklog.ErrEntryNotFound
	}
	return e, err
}

// ListEntries returns a user's work logs, most recent shift first.
func (s *Store) ListEntries(ctx context.Context, userID string) ([]worklog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+entryColumns+` FROM work_logs
		 WHERE user_id = ?
		 ORDER BY COALESCE(NULLIF(date, ''), start_date) DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []worklog.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteEntry removes a work log entry.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM work_logs WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return worklog.ErrEntryNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (worklog.Entry, error) {
	var (
		e                                       worklog.Entry
		typ                                     string
		date, startTime, endTime                string
		startDate, endDate                      string
		hasCoordination, hasNight, arrivesPrior int
		amount, rateApplied, duration           string
		isGross                                 int
		createdAt                               string
	)

	err := row.Scan(
		&e.ID, &e.UserID, &typ,
		&date, &startTime, &endTime, &startDate, &endDate,
		&e.Description, &hasCoordination, &hasNight, &arrivesPrior,
		&amount, &rateApplied, &duration, &isGross,
		&createdAt,
	)
	if err != nil {
		return worklog.Entry{}, err
	}

	e.Type = worklog.EntryType(typ)
	e.HasCoordination = hasCoordination != 0
	e.HasNight = hasNight != 0
	e.ArrivesPrior = arrivesPrior != 0
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	// A malformed date column scans to the zero Day; the aggregation
	// layer skips it rather than failing the whole listing.
	switch e.Type {
	case worklog.EntryParticular:
		d, _ := worklog.ParseDay(date)
		e.Particular = &worklog.Particular{
			Date:      d,
			StartTime: startTime,
			EndTime:   endTime,
		}
	case worklog.EntryTutorial:
		sd, _ := worklog.ParseDay(startDate)
		ed, _ := worklog.ParseDay(endDate)
		e.Tutorial = &worklog.Tutorial{StartDate: sd, EndDate: ed}
	}

	durationUnit := worklog.UnitHours
	if e.Type == worklog.EntryTutorial {
		durationUnit = worklog.UnitDays
	}
	e.Computed = worklog.Computed{
		Amount:      worklog.Amount{Value: parseDecimal(amount), Unit: worklog.UnitEuros},
		RateApplied: parseDecimal(rateApplied),
		Duration:    worklog.Amount{Value: parseDecimal(duration), Unit: durationUnit},
		IsGross:     isGross != 0,
	}
	if e.Particular != nil {
		e.Particular.Hours = e.Computed.Duration.Value
	}
	return e, nil
}

// =============================================================================
// USER SETTINGS
// =============================================================================

// SaveRates upserts a user's tariff.
func (s *Store) SaveRates(ctx context.Context, userID string, r worklog.Rates) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO user_settings (user_id, hourly_rate, daily_rate, coordination_rate, night_rate, is_gross, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			hourly_rate = excluded.hourly_rate,
			daily_rate = excluded.daily_rate,
			coordination_rate = excluded.coordination_rate,
			night_rate = excluded.night_rate,
			is_gross = excluded.is_gross,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		userID,
		r.HourlyRate.String(), r.DailyRate.String(),
		r.CoordinationRate.String(), r.NightRate.String(),
		boolToInt(r.IsGross),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetRates retrieves a user's tariff.
func (s *Store) GetRates(ctx context.Context, userID string) (worklog.Rates, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		hourly, daily, coordination, night string
		isGross                            int
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT hourly_rate, daily_rate, coordination_rate, night_rate, is_gross
		 FROM user_settings WHERE user_id = ?`,
		userID,
	).Scan(&hourly, &daily, &coordination, &night, &isGross)

	if err == sql.ErrNoRows {
		return worklog.Rates{}, worklog.ErrSettingsNotFound
	}
	if err != nil {
		return worklog.Rates{}, err
	}

	return worklog.Rates{
		HourlyRate:       parseDecimal(hourly),
		DailyRate:        parseDecimal(daily),
		CoordinationRate: parseDecimal(coordination),
		NightRate:        parseDecimal(night),
		IsGross:          isGross != 0,
	}, nil
}

// =============================================================================
// ACCESS REQUESTS
// =============================================================================

// SaveAccessRequest upserts an access request.
func (s *Store) SaveAccessRequest(ctx context.Context, req worklog.AccessRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	status := req.Status
	if status == "" {
		status = worklog.StatusPending
	}

	query := `
		INSERT INTO access_requests (id, email, first_name, last_name, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			status = excluded.status
	`

	_, err := s.db.ExecContext(ctx, query,
		req.ID, req.Email, req.FirstName, req.LastName,
		string(status), createdAt.Format(time.RFC3339),
	)
	return err
}

// ListAccessRequests returns all access requests, oldest first.
func (s *Store) ListAccessRequests(ctx context.Context) ([]worklog.AccessRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, first_name, last_name, status, created_at
		 FROM access_requests ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []worklog.AccessRequest
	for rows.Next() {
		var (
			r         worklog.AccessRequest
			status    string
			createdAt string
		)
		if err := rows.Scan(&r.ID, &r.Email, &r.FirstName, &r.LastName, &status, &createdAt); err != nil {
			return nil, err
		}
		r.Status = worklog.RequestStatus(status)
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// SetAccessRequestStatus updates the status of an access request.
func (s *Store) SetAccessRequestStatus(ctx context.Context, id string, status worklog.RequestStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"UPDATE access_requests SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return worklog.ErrAccessRequestNotFound
	}
	return nil
}

// =============================================================================
// DEV HELPERS
// =============================================================================

// Reset wipes all data. Development only.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"work_logs", "user_settings", "access_requests"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

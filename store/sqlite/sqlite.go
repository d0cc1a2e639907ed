/*
Package sqlite provides the SQLite-backed implementation of every
persistence interface in the attendance engine.

PURPOSE:
  One store type implements the presence set, the attendance ledger,
  the worker/project rosters, the holiday calendar, and reminders. In
  production the same patterns apply to PostgreSQL - only minor SQL
  dialect differences.

INTERFACES IMPLEMENTED:
  attendance.PresenceStore  active_clockins (PK worker_id)
  attendance.LedgerStore    attendance (append-only)
  attendance.WorkerStore    workers
  attendance.ProjectStore   projects
  calendar.HolidayCalendar  holidays
  reminder.Store            reminders

PER-RECORD MODEL:
  Storage is per-record upsert/append; the legacy whole-table POST
  contract is served by ReplacePresence, a thin adapter that diffs the
  incoming array against current rows inside one SQL transaction and
  logs any divergence it would otherwise silently discard.

APPEND-ONLY ENFORCEMENT:
  No UPDATE or DELETE statement touches the attendance table. A
  duplicate record id is rejected, which makes retries safe.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  st, err := sqlite.New("./data/site.db")   // ":memory:" for tests
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()

  tracker := attendance.NewTracker(st, st)

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - attendance/store.go: Interface definitions
  - attendance/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/sitecrew/attendance-engine/attendance"
	"github.com/sitecrew/attendance-engine/calendar"
	"github.com/sitecrew/attendance-engine/reminder"
)

// Store implements all storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a store with the given database path. Use ":memory:" for
// an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	-- Worker roster
	CREATE TABLE IF NOT EXISTS workers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		rate_type TEXT NOT NULL,
		rate TEXT NOT NULL,
		levy TEXT NOT NULL DEFAULT '0',
		nationality TEXT,
		pass_expiry TEXT,
		show_in_roster BOOLEAN DEFAULT TRUE,
		employer_cpf TEXT NOT NULL DEFAULT '0',
		created_at TEXT NOT NULL
	);

	-- Project roster (selection list + display names)
	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		client TEXT,
		active BOOLEAN DEFAULT TRUE,
		created_at TEXT NOT NULL
	);

	-- Active presence set. The PRIMARY KEY on worker_id is the
	-- single-presence invariant: a second clock-in upserts over
	-- the first.
	CREATE TABLE IF NOT EXISTS active_clockins (
		worker_id TEXT PRIMARY KEY,
		clock_in_at TEXT NOT NULL,
		project_id TEXT NOT NULL,
		overnight BOOLEAN DEFAULT FALSE
	);

	-- Attendance ledger (append-only)
	CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY,
		worker_id TEXT NOT NULL,
		date TEXT NOT NULL,
		normal_hours TEXT NOT NULL,
		overtime_hours TEXT NOT NULL,
		project_id TEXT,
		meal_allowance BOOLEAN DEFAULT FALSE,
		transport_claim TEXT NOT NULL DEFAULT '0',
		remarks TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_attendance_worker_date
		ON attendance(worker_id, date);
	CREATE INDEX IF NOT EXISTS idx_attendance_date
		ON attendance(date);

	-- Public holidays (configurable, not hard-coded)
	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		name TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_date_name
		ON holidays(date, name);

	-- Reminders
	CREATE TABLE IF NOT EXISTS reminders (
		id TEXT PRIMARY KEY,
		creator_id TEXT NOT NULL,
		scope TEXT NOT NULL,
		target_ids_json TEXT,
		remind_at TEXT NOT NULL,
		message TEXT,
		dismissed BOOLEAN DEFAULT FALSE,
		dismissed_by_json TEXT,
		created_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// PRESENCE STORE (attendance.PresenceStore)
// =============================================================================

func (s *Store) Get(ctx context.Context, workerID string) (*attendance.ActiveClockIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var e attendance.ActiveClockIn
	var clockInAt string
	err := s.db.QueryRowContext(ctx,
		"SELECT worker_id, clock_in_at, project_id, overnight FROM active_clockins WHERE worker_id = ?",
		workerID,
	).Scan(&e.WorkerID, &clockInAt, &e.ProjectID, &e.Overnight)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.ClockInAt, _ = time.Parse(time.RFC3339, clockInAt)
	return &e, nil
}

func (s *Store) Put(ctx context.Context, entry attendance.ActiveClockIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO active_clockins (worker_id, clock_in_at, project_id, overnight)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(worker_id) DO UPDATE SET
			clock_in_at = excluded.clock_in_at,
			project_id = excluded.project_id,
			overnight = excluded.overnight
	`
	_, err := s.db.ExecContext(ctx, query,
		entry.WorkerID,
		entry.ClockInAt.UTC().Format(time.RFC3339),
		entry.ProjectID,
		entry.Overnight,
	)
	return err
}

func (s *Store) Remove(ctx context.Context, workerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM active_clockins WHERE worker_id = ?", workerID)
	return err
}

func (s *Store) List(ctx context.Context) ([]attendance.ActiveClockIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT worker_id, clock_in_at, project_id, overnight FROM active_clockins ORDER BY worker_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []attendance.ActiveClockIn
	for rows.Next() {
		var e attendance.ActiveClockIn
		var clockInAt string
		if err := rows.Scan(&e.WorkerID, &clockInAt, &e.ProjectID, &e.Overnight); err != nil {
			return nil, err
		}
		e.ClockInAt, _ = time.Parse(time.RFC3339, clockInAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

// ReplacePresence is the compatibility adapter for the legacy
// whole-table POST contract. It replaces the presence set with entries
// atomically on top of the per-record statements, and logs any row the
// replace would silently drop so lost updates are at least visible.
func (s *Store) ReplacePresence(ctx context.Context, entries []attendance.ActiveClockIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	incoming := make(map[string]bool, len(entries))
	for _, e := range entries {
		incoming[e.WorkerID] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, "SELECT worker_id FROM active_clockins")
	if err != nil {
		return err
	}
	var dropped []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		if !incoming[id] {
			dropped = append(dropped, id)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}
	if len(dropped) > 0 {
		log.Printf("[Store] table replace drops presence rows for workers %s (possible concurrent overwrite)",
			strings.Join(dropped, ", "))
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM active_clockins"); err != nil {
		return err
	}
	for _, e := range entries {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO active_clockins (worker_id, clock_in_at, project_id, overnight) VALUES (?, ?, ?, ?)",
			e.WorkerID, e.ClockInAt.UTC().Format(time.RFC3339), e.ProjectID, e.Overnight)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// =============================================================================
// LEDGER STORE (attendance.LedgerStore)
// =============================================================================

func (s *Store) Append(ctx context.Context, rec attendance.AttendanceRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO attendance
		(id, worker_id, date, normal_hours, overtime_hours, project_id,
		 meal_allowance, transport_claim, remarks, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.ID,
		rec.WorkerID,
		rec.Date.UTC().Format("2006-01-02"),
		rec.NormalHours.String(),
		rec.OvertimeHours.String(),
		rec.ProjectID,
		rec.MealAllowance,
		rec.TransportClaim.String(),
		rec.Remarks,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return attendance.ErrDuplicateRecord
		}
		return fmt.Errorf("failed to append attendance record: %w", err)
	}
	return nil
}

func (s *Store) ListMonth(ctx context.Context, year int, month time.Month) ([]attendance.AttendanceRecord, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return s.ListRange(ctx, from, from.AddDate(0, 1, 0))
}

func (s *Store) ListWorker(ctx context.Context, workerID string) ([]attendance.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryRecords(ctx,
		selectAttendance+" WHERE worker_id = ? ORDER BY date ASC", workerID)
}

func (s *Store) ListRange(ctx context.Context, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryRecords(ctx,
		selectAttendance+" WHERE date >= ? AND date < ? ORDER BY date ASC, worker_id ASC",
		from.UTC().Format("2006-01-02"), to.UTC().Format("2006-01-02"))
}

const selectAttendance = `
	SELECT id, worker_id, date, normal_hours, overtime_hours, project_id,
	       meal_allowance, transport_claim, remarks
	FROM attendance`

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]attendance.AttendanceRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var (
			r              attendance.AttendanceRecord
			date           string
			normal, ot     string
			transportClaim string
			projectID      sql.NullString
			remarks        sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.WorkerID, &date, &normal, &ot,
			&projectID, &r.MealAllowance, &transportClaim, &remarks); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		r.Date, _ = time.Parse("2006-01-02", date)
		r.NormalHours = mustDecimal(normal)
		r.OvertimeHours = mustDecimal(ot)
		r.TransportClaim = mustDecimal(transportClaim)
		r.ProjectID = projectID.String
		r.Remarks = remarks.String
		records = append(records, r)
	}
	return records, rows.Err()
}

// =============================================================================
// WORKER STORE (attendance.WorkerStore)
// =============================================================================

func (s *Store) GetWorker(ctx context.Context, id string) (*attendance.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, selectWorkers+" WHERE id = ?", id)
	w, err := scanWorker(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Store) SaveWorker(ctx context.Context, w attendance.Worker) error {
	if err := w.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var passExpiry *string
	if w.PassExpiry != nil {
		d := w.PassExpiry.UTC().Format("2006-01-02")
		passExpiry = &d
	}

	query := `
		INSERT INTO workers
		(id, name, rate_type, rate, levy, nationality, pass_expiry,
		 show_in_roster, employer_cpf, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			rate_type = excluded.rate_type,
			rate = excluded.rate,
			levy = excluded.levy,
			nationality = excluded.nationality,
			pass_expiry = excluded.pass_expiry,
			show_in_roster = excluded.show_in_roster,
			employer_cpf = excluded.employer_cpf
	`
	_, err := s.db.ExecContext(ctx, query,
		w.ID, w.Name, string(w.RateType), w.Rate.String(), w.Levy.String(),
		w.Nationality, passExpiry, w.ShowInRoster, w.EmployerCPF.String(),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) ListWorkers(ctx context.Context) ([]attendance.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, selectWorkers+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []attendance.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, *w)
	}
	return workers, rows.Err()
}

const selectWorkers = `
	SELECT id, name, rate_type, rate, levy, nationality, pass_expiry,
	       show_in_roster, employer_cpf
	FROM workers`

type rowScanner interface{ Scan(dest ...any) error }

func scanWorker(row rowScanner) (*attendance.Worker, error) {
	var (
		w           attendance.Worker
		rateType    string
		rate, levy  string
		cpf         string
		nationality sql.NullString
		passExpiry  sql.NullString
	)
	err := row.Scan(&w.ID, &w.Name, &rateType, &rate, &levy,
		&nationality, &passExpiry, &w.ShowInRoster, &cpf)
	if err != nil {
		return nil, err
	}
	w.RateType = attendance.RateType(rateType)
	w.Rate = mustDecimal(rate)
	w.Levy = mustDecimal(levy)
	w.EmployerCPF = mustDecimal(cpf)
	w.Nationality = nationality.String
	if passExpiry.Valid && passExpiry.String != "" {
		if t, perr := time.Parse("2006-01-02", passExpiry.String); perr == nil {
			w.PassExpiry = &t
		}
	}
	return &w, nil
}

// =============================================================================
// PROJECT STORE (attendance.ProjectStore)
// =============================================================================

func (s *Store) GetProject(ctx context.Context, id string) (*attendance.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p attendance.Project
	var client sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, client, active FROM projects WHERE id = ?", id,
	).Scan(&p.ID, &p.Name, &client, &p.Active)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Client = client.String
	return &p, nil
}

func (s *Store) SaveProject(ctx context.Context, p attendance.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO projects (id, name, client, active, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			client = excluded.client,
			active = excluded.active
	`
	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Client, p.Active, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *Store) ListProjects(ctx context.Context) ([]attendance.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id, name, client, active FROM projects ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []attendance.Project
	for rows.Next() {
		var p attendance.Project
		var client sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &client, &p.Active); err != nil {
			return nil, err
		}
		p.Client = client.String
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// =============================================================================
// HOLIDAY CALENDAR (calendar.HolidayCalendar)
// =============================================================================

func (s *Store) IsPublicHoliday(date time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM holidays WHERE date = ?",
		date.UTC().Format("2006-01-02")).Scan(&count)
	if err != nil {
		return false
	}
	return count > 0
}

func (s *Store) Holidays(year int) []calendar.Holiday {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT id, date, name FROM holidays WHERE date >= ? AND date <= ? ORDER BY date ASC",
		fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year))
	if err != nil {
		return nil
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		var date string
		if err := rows.Scan(&h.ID, &date, &h.Name); err != nil {
			return holidays
		}
		h.Date, _ = time.Parse("2006-01-02", date)
		holidays = append(holidays, h)
	}
	return holidays
}

func (s *Store) SaveHoliday(ctx context.Context, h calendar.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO holidays (id, date, name)
		VALUES (?, ?, ?)
		ON CONFLICT(date, name) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query, h.ID, h.Date.UTC().Format("2006-01-02"), h.Name)
	return err
}

func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM holidays WHERE id = ?", id)
	return err
}

// =============================================================================
// REMINDER STORE (reminder.Store)
// =============================================================================

func (s *Store) GetReminder(ctx context.Context, id string) (*reminder.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, selectReminders+" WHERE id = ?", id)
	r, err := scanReminder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Store) SaveReminder(ctx context.Context, r reminder.Reminder) error {
	if err := r.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	targets, _ := json.Marshal(r.TargetUserIDs)
	dismissedBy, _ := json.Marshal(r.DismissedBy)

	query := `
		INSERT INTO reminders
		(id, creator_id, scope, target_ids_json, remind_at, message,
		 dismissed, dismissed_by_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			scope = excluded.scope,
			target_ids_json = excluded.target_ids_json,
			remind_at = excluded.remind_at,
			message = excluded.message,
			dismissed = excluded.dismissed,
			dismissed_by_json = excluded.dismissed_by_json
	`
	_, err := s.db.ExecContext(ctx, query,
		r.ID, r.CreatorID, string(r.Scope), string(targets),
		r.RemindAt.UTC().Format(time.RFC3339), r.Message,
		r.Dismissed, string(dismissedBy),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) ListReminders(ctx context.Context) ([]reminder.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, selectReminders+" ORDER BY remind_at ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []reminder.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, *r)
	}
	return reminders, rows.Err()
}

const selectReminders = `
	SELECT id, creator_id, scope, target_ids_json, remind_at, message,
	       dismissed, dismissed_by_json
	FROM reminders`

func scanReminder(row rowScanner) (*reminder.Reminder, error) {
	var (
		r           reminder.Reminder
		scope       string
		targets     sql.NullString
		remindAt    string
		message     sql.NullString
		dismissedBy sql.NullString
	)
	err := row.Scan(&r.ID, &r.CreatorID, &scope, &targets, &remindAt,
		&message, &r.Dismissed, &dismissedBy)
	if err != nil {
		return nil, err
	}
	r.Scope = reminder.Scope(scope)
	r.RemindAt, _ = time.Parse(time.RFC3339, remindAt)
	r.Message = message.String
	if targets.Valid && targets.String != "" {
		if err := json.Unmarshal([]byte(targets.String), &r.TargetUserIDs); err != nil {
			return nil, fmt.Errorf("failed to parse reminder targets: %w", err)
		}
	}
	if dismissedBy.Valid && dismissedBy.String != "" {
		if err := json.Unmarshal([]byte(dismissedBy.String), &r.DismissedBy); err != nil {
			return nil, fmt.Errorf("failed to parse reminder dismissals: %w", err)
		}
	}
	return &r, nil
}

// =============================================================================
// UTILITIES
// =============================================================================

// Reset clears all data. For testing and development only.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{"attendance", "active_clockins", "workers", "projects", "holidays", "reminders"}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

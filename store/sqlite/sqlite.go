/*
Package sqlite provides a SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements engine.Store (shifts, employees, holidays) using SQLite. In
  production, the same patterns apply to PostgreSQL - only minor SQL
  dialect differences.

KEY TABLES:
  employees: Employee records with optional base hourly rate
  shifts:    Recurring weekly shift assignments (weekday bitset)
  holidays:  Dated holiday table, keyed by date

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. With PostgreSQL, database-level
  concurrency control handles this instead.

USAGE:
  store, err := sqlite.New("./data/shifts.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - engine/store.go: Interface definitions
  - engine/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/turno/shift-engine/engine"
)

// Store implements engine.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ engine.Store = (*Store)(nil)

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
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		hourly_rate TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS shifts (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		break_duration TEXT NOT NULL,
		days_of_week INTEGER NOT NULL,
		hourly_rate TEXT NOT NULL,
		overtime_authorized INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE INDEX IF NOT EXISTS idx_shifts_employee
		ON shifts(employee_id);

	CREATE TABLE IF NOT EXISTS holidays (
		date TEXT PRIMARY KEY,
		name TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) SaveEmployee(ctx context.Context, e engine.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, hourly_rate) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, hourly_rate = excluded.hourly_rate`,
		string(e.ID), e.Name, e.HourlyRate)
	return err
}

func (s *Store) GetEmployee(ctx context.Context, id engine.EmployeeID) (engine.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var e engine.Employee
	var rawID string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, hourly_rate FROM employees WHERE id = ?`, string(id)).
		Scan(&rawID, &e.Name, &e.HourlyRate)
	if err == sql.ErrNoRows {
		return engine.Employee{}, engine.ErrEmployeeNotFound
	}
	if err != nil {
		return engine.Employee{}, err
	}
	e.ID = engine.EmployeeID(rawID)
	return e, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]engine.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, hourly_rate FROM employees ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []engine.Employee
	for rows.Next() {
		var e engine.Employee
		var rawID string
		if err := rows.Scan(&rawID, &e.Name, &e.HourlyRate); err != nil {
			return nil, err
		}
		e.ID = engine.EmployeeID(rawID)
		out = append(out, e)
	}
	return out, rows.Err()
}

// =============================================================================
// SHIFTS
// =============================================================================

func (s *Store) SaveShift(ctx context.Context, shift engine.ShiftSchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	overtime := 0
	if shift.OvertimeAuthorized {
		overtime = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shifts (id, employee_id, start_time, end_time, break_duration,
			days_of_week, hourly_rate, overtime_authorized)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			employee_id = excluded.employee_id,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			break_duration = excluded.break_duration,
			days_of_week = excluded.days_of_week,
			hourly_rate = excluded.hourly_rate,
			overtime_authorized = excluded.overtime_authorized`,
		string(shift.ID), string(shift.EmployeeID),
		shift.StartTime.String(), shift.EndTime.String(), shift.BreakDuration.String(),
		int(shift.DaysOfWeek), shift.HourlyRate.String(), overtime)
	return err
}

func (s *Store) GetShift(ctx context.Context, id engine.ShiftID) (engine.ShiftSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, employee_id, start_time, end_time, break_duration,
			days_of_week, hourly_rate, overtime_authorized
		FROM shifts WHERE id = ?`, string(id))

	shift, err := scanShift(row)
	if err == sql.ErrNoRows {
		return engine.ShiftSchedule{}, engine.ErrShiftNotFound
	}
	return shift, err
}

func (s *Store) ListShifts(ctx context.Context, employeeID engine.EmployeeID) ([]engine.ShiftSchedule, error) {
	return s.queryShifts(ctx, `
		SELECT id, employee_id, start_time, end_time, break_duration,
			days_of_week, hourly_rate, overtime_authorized
		FROM shifts WHERE employee_id = ? ORDER BY created_at, id`, string(employeeID))
}

func (s *Store) ListAllShifts(ctx context.Context) ([]engine.ShiftSchedule, error) {
	return s.queryShifts(ctx, `
		SELECT id, employee_id, start_time, end_time, break_duration,
			days_of_week, hourly_rate, overtime_authorized
		FROM shifts ORDER BY created_at, id`)
}

func (s *Store) DeleteShift(ctx context.Context, id engine.ShiftID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, string(id))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return engine.ErrShiftNotFound
	}
	return nil
}

func (s *Store) queryShifts(ctx context.Context, query string, args ...any) ([]engine.ShiftSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []engine.ShiftSchedule
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, shift)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShift(row rowScanner) (engine.ShiftSchedule, error) {
	var (
		id, employeeID, startRaw, endRaw, breakRaw, rateRaw string
		days, overtime                                      int
	)
	if err := row.Scan(&id, &employeeID, &startRaw, &endRaw, &breakRaw, &days, &rateRaw, &overtime); err != nil {
		return engine.ShiftSchedule{}, err
	}

	start, err := engine.ParseClock("start_time", startRaw)
	if err != nil {
		return engine.ShiftSchedule{}, err
	}
	end, err := engine.ParseClock("end_time", endRaw)
	if err != nil {
		return engine.ShiftSchedule{}, err
	}
	brk, err := engine.ParseClock("break_duration", breakRaw)
	if err != nil {
		return engine.ShiftSchedule{}, err
	}
	rate, err := decimal.NewFromString(rateRaw)
	if err != nil {
		return engine.ShiftSchedule{}, fmt.Errorf("stored hourly rate %q: %w", rateRaw, err)
	}

	return engine.ShiftSchedule{
		ID:                 engine.ShiftID(id),
		EmployeeID:         engine.EmployeeID(employeeID),
		StartTime:          start,
		EndTime:            end,
		BreakDuration:      brk,
		DaysOfWeek:         engine.DaySet(days),
		HourlyRate:         rate,
		OvertimeAuthorized: overtime != 0,
	}, nil
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func (s *Store) SaveHoliday(ctx context.Context, h engine.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO holidays (date, name) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET name = excluded.name`,
		h.Date.String(), h.Name)
	return err
}

func (s *Store) ListHolidays(ctx context.Context, year int) ([]engine.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT date, name FROM holidays WHERE date LIKE ? ORDER BY date`,
		fmt.Sprintf("%04d-%%", year))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []engine.Holiday
	for rows.Next() {
		var dateRaw, name string
		if err := rows.Scan(&dateRaw, &name); err != nil {
			return nil, err
		}
		date, err := engine.ParseDate(dateRaw)
		if err != nil {
			return nil, err
		}
		out = append(out, engine.Holiday{Date: date, Name: name})
	}
	return out, rows.Err()
}

func (s *Store) DeleteHoliday(ctx context.Context, date engine.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM holidays WHERE date = ?`, date.String())
	return err
}

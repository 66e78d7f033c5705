/*
store.go - Persistence interfaces for collaborator data

PURPOSE:
  Defines the contract between the pure computation core and whatever holds
  the shift and holiday records. The engine itself never touches a store;
  it computes over caller-supplied slices. These interfaces exist for the
  surrounding application (API handlers, seeders, reports) so the same code
  runs against SQLite in production and the in-memory store in tests.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: Production SQLite
  - engine/store/memory.go: In-memory for testing

SEE ALSO:
  - api/handlers.go: The only consumer of these interfaces
*/
package engine

import "context"

// =============================================================================
// EMPLOYEE - Collaborator record the scheduler owns
// =============================================================================

type Employee struct {
	ID   EmployeeID
	Name string
	// HourlyRate is the employee's base wage; zero means "derive from the
	// jurisdiction's monthly minimum" at computation time.
	HourlyRate string
}

// =============================================================================
// STORE INTERFACES
// =============================================================================

// ShiftStore persists recurring shift assignments.
type ShiftStore interface {
	// SaveShift inserts or replaces a shift by ID.
	SaveShift(ctx context.Context, shift ShiftSchedule) error

	// GetShift returns a shift by ID, or ErrShiftNotFound.
	GetShift(ctx context.Context, id ShiftID) (ShiftSchedule, error)

	// ListShifts returns all shifts for an employee in insertion order.
	ListShifts(ctx context.Context, employeeID EmployeeID) ([]ShiftSchedule, error)

	// ListAllShifts returns every shift in insertion order.
	ListAllShifts(ctx context.Context) ([]ShiftSchedule, error)

	// DeleteShift removes a shift, or ErrShiftNotFound.
	DeleteShift(ctx context.Context, id ShiftID) error
}

// EmployeeStore persists employee records.
type EmployeeStore interface {
	SaveEmployee(ctx context.Context, e Employee) error
	GetEmployee(ctx context.Context, id EmployeeID) (Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
}

// HolidayStore persists the dated holiday table per year.
type HolidayStore interface {
	SaveHoliday(ctx context.Context, h Holiday) error
	ListHolidays(ctx context.Context, year int) ([]Holiday, error)
	DeleteHoliday(ctx context.Context, date Date) error
}

// Store is the full persistence surface the application wires up.
type Store interface {
	ShiftStore
	EmployeeStore
	HolidayStore
}

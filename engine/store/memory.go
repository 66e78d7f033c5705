// Package store provides Store implementations.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/turno/shift-engine/engine"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	shifts    []engine.ShiftSchedule
	employees map[engine.EmployeeID]engine.Employee
	empOrder  []engine.EmployeeID
	holidays  map[string]engine.Holiday // keyed by date string
}

func NewMemory() *Memory {
	return &Memory{
		employees: make(map[engine.EmployeeID]engine.Employee),
		holidays:  make(map[string]engine.Holiday),
	}
}

var _ engine.Store = (*Memory)(nil)

// -----------------------------------------------------------------------------
// Shifts
// -----------------------------------------------------------------------------

func (m *Memory) SaveShift(_ context.Context, shift engine.ShiftSchedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.shifts {
		if s.ID == shift.ID {
			m.shifts[i] = shift
			return nil
		}
	}
	m.shifts = append(m.shifts, shift)
	return nil
}

func (m *Memory) GetShift(_ context.Context, id engine.ShiftID) (engine.ShiftSchedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return engine.ShiftSchedule{}, engine.ErrShiftNotFound
}

func (m *Memory) ListShifts(_ context.Context, employeeID engine.EmployeeID) ([]engine.ShiftSchedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []engine.ShiftSchedule
	for _, s := range m.shifts {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *Memory) ListAllShifts(_ context.Context) ([]engine.ShiftSchedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.ShiftSchedule, len(m.shifts))
	copy(out, m.shifts)
	return out, nil
}

func (m *Memory) DeleteShift(_ context.Context, id engine.ShiftID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.shifts {
		if s.ID == id {
			m.shifts = append(m.shifts[:i], m.shifts[i+1:]...)
			return nil
		}
	}
	return engine.ErrShiftNotFound
}

// -----------------------------------------------------------------------------
// Employees
// -----------------------------------------------------------------------------

func (m *Memory) SaveEmployee(_ context.Context, e engine.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.employees[e.ID]; !exists {
		m.empOrder = append(m.empOrder, e.ID)
	}
	m.employees[e.ID] = e
	return nil
}

func (m *Memory) GetEmployee(_ context.Context, id engine.EmployeeID) (engine.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.employees[id]
	if !ok {
		return engine.Employee{}, engine.ErrEmployeeNotFound
	}
	return e, nil
}

func (m *Memory) ListEmployees(_ context.Context) ([]engine.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.Employee, 0, len(m.empOrder))
	for _, id := range m.empOrder {
		out = append(out, m.employees[id])
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// Holidays
// -----------------------------------------------------------------------------

func (m *Memory) SaveHoliday(_ context.Context, h engine.Holiday) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holidays[h.Date.String()] = h
	return nil
}

func (m *Memory) ListHolidays(_ context.Context, year int) ([]engine.Holiday, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []engine.Holiday
	for _, h := range m.holidays {
		if h.Date.Year() == year {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *Memory) DeleteHoliday(_ context.Context, date engine.Date) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.holidays, date.String())
	return nil
}

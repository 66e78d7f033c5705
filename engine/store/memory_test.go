package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turno/shift-engine/engine"
	"github.com/turno/shift-engine/engine/store"
)

func memShift(id, employee string) engine.ShiftSchedule {
	return engine.ShiftSchedule{
		ID:         engine.ShiftID(id),
		EmployeeID: engine.EmployeeID(employee),
		StartTime:  engine.MustClock("09:00"),
		EndTime:    engine.MustClock("17:00"),
		DaysOfWeek: engine.Days(time.Monday),
		HourlyRate: decimal.NewFromInt(10000),
	}
}

func TestMemory_ShiftLifecycle(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveShift(ctx, memShift("s1", "emp-1")))
	require.NoError(t, m.SaveShift(ctx, memShift("s2", "emp-1")))
	require.NoError(t, m.SaveShift(ctx, memShift("s3", "emp-2")))

	got, err := m.GetShift(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, engine.EmployeeID("emp-1"), got.EmployeeID)

	mine, err := m.ListShifts(ctx, "emp-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := m.ListAllShifts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, engine.ShiftID("s1"), all[0].ID)

	require.NoError(t, m.DeleteShift(ctx, "s1"))
	_, err = m.GetShift(ctx, "s1")
	assert.True(t, errors.Is(err, engine.ErrShiftNotFound))
	assert.True(t, errors.Is(m.DeleteShift(ctx, "s1"), engine.ErrShiftNotFound))
}

func TestMemory_SaveShiftReplacesByID(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveShift(ctx, memShift("s1", "emp-1")))
	updated := memShift("s1", "emp-1")
	updated.EndTime = engine.MustClock("20:00")
	require.NoError(t, m.SaveShift(ctx, updated))

	all, err := m.ListAllShifts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, engine.MustClock("20:00"), all[0].EndTime)
}

func TestMemory_EmployeesKeepInsertionOrder(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveEmployee(ctx, engine.Employee{ID: "z", Name: "Zoe"}))
	require.NoError(t, m.SaveEmployee(ctx, engine.Employee{ID: "a", Name: "Ana"}))
	require.NoError(t, m.SaveEmployee(ctx, engine.Employee{ID: "z", Name: "Zoe B"}))

	all, err := m.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, engine.EmployeeID("z"), all[0].ID)
	assert.Equal(t, "Zoe B", all[0].Name)

	_, err = m.GetEmployee(ctx, "missing")
	assert.True(t, errors.Is(err, engine.ErrEmployeeNotFound))
}

func TestMemory_HolidaysByYear(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveHoliday(ctx, engine.Holiday{Date: engine.NewDate(2026, time.December, 25), Name: "Navidad"}))
	require.NoError(t, m.SaveHoliday(ctx, engine.Holiday{Date: engine.NewDate(2026, time.January, 1), Name: "Año Nuevo"}))
	require.NoError(t, m.SaveHoliday(ctx, engine.Holiday{Date: engine.NewDate(2027, time.January, 1), Name: "Año Nuevo"}))

	got, err := m.ListHolidays(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Año Nuevo", got[0].Name)
	assert.Equal(t, "Navidad", got[1].Name)

	require.NoError(t, m.DeleteHoliday(ctx, engine.NewDate(2026, time.January, 1)))
	got, err = m.ListHolidays(ctx, 2026)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

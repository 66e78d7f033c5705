package engine_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/turno/shift-engine/colombia"
	"github.com/turno/shift-engine/engine"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newCalculator(t *testing.T) *engine.Calculator {
	t.Helper()
	return engine.NewCalculator(colombia.Rules())
}

func shift(t *testing.T, id, start, end, breakDur string, days ...time.Weekday) engine.ShiftSchedule {
	t.Helper()
	s := engine.ShiftSchedule{
		ID:         engine.ShiftID(id),
		EmployeeID: "emp-1",
		StartTime:  clock(t, start),
		EndTime:    clock(t, end),
		DaysOfWeek: engine.Days(days...),
		HourlyRate: decimal.NewFromInt(10000),
	}
	if breakDur != "" {
		s.BreakDuration = clock(t, breakDur)
	}
	return s
}

func compute(t *testing.T, calc *engine.Calculator, shifts []engine.ShiftSchedule, holidays []engine.Holiday) engine.PayrollBreakdown {
	t.Helper()
	bd, err := calc.ComputePayroll(shifts, holidays, engine.Period{})
	if err != nil {
		t.Fatalf("ComputePayroll: %v", err)
	}
	return bd
}

// =============================================================================
// CLASSIFICATION TESTS
// =============================================================================

func TestComputePayroll_RegularShift(t *testing.T) {
	// GIVEN: A weekday shift of 9 clock hours with a one-hour break
	// WHEN: Computing the breakdown
	// THEN: All 8 worked hours are regular, nothing else accrues

	calc := newCalculator(t)
	bd := compute(t, calc, []engine.ShiftSchedule{
		shift(t, "s1", "08:00", "17:00", "01:00", time.Monday),
	}, nil)

	hoursEqual(t, bd.RegularHours, 8)
	hoursEqual(t, bd.OvertimeHours, 0)
	hoursEqual(t, bd.NightHours, 0)
	hoursEqual(t, bd.SundayHours, 0)
	hoursEqual(t, bd.HolidayHours, 0)
	hoursEqual(t, bd.WeeklyHours, 8)
	hoursEqual(t, bd.DailyHoursExceeded, 0)
}

func TestComputePayroll_OvertimeAboveDailyLimit(t *testing.T) {
	// Scenario: 08:00-19:00 with a one-hour break is 10 worked hours,
	// split 8 regular + 2 overtime, and the daily excess is tracked.
	calc := newCalculator(t)
	bd := compute(t, calc, []engine.ShiftSchedule{
		shift(t, "s1", "08:00", "19:00", "01:00", time.Tuesday),
	}, nil)

	hoursEqual(t, bd.RegularHours, 8)
	hoursEqual(t, bd.OvertimeHours, 2)
	hoursEqual(t, bd.DailyHoursExceeded, 2)
	hoursEqual(t, bd.WeeklyHours, 10)
}

func TestComputePayroll_SundayShift(t *testing.T) {
	calc := newCalculator(t)
	bd := compute(t, calc, []engine.ShiftSchedule{
		shift(t, "s1", "09:00", "14:00", "", time.Sunday),
	}, nil)

	hoursEqual(t, bd.SundayHours, 5)
	hoursEqual(t, bd.RegularHours, 0)
	hoursEqual(t, bd.OvertimeHours, 0)

	if len(bd.Shifts) != 1 || bd.Shifts[0].Bucket != engine.BucketSunday {
		t.Fatalf("expected one sunday detail row, got %+v", bd.Shifts)
	}
}

func TestComputePayroll_HolidayTakesPrecedenceOverSunday(t *testing.T) {
	// GIVEN: A Sunday shift, and a holiday in the period falling on a Sunday
	// WHEN: Classifying
	// THEN: The holiday bucket wins; nothing lands in the sunday bucket

	calc := newCalculator(t)
	holidays := []engine.Holiday{
		{Date: engine.NewDate(2026, time.March, 22), Name: "Festivo"}, // a Sunday
	}
	bd := compute(t, calc, []engine.ShiftSchedule{
		shift(t, "s1", "09:00", "14:00", "", time.Sunday),
	}, holidays)

	hoursEqual(t, bd.HolidayHours, 5)
	hoursEqual(t, bd.SundayHours, 0)
}

func TestComputePayroll_HolidayMatchesByWeekday(t *testing.T) {
	// A Thursday holiday anywhere in the period marks every Thursday
	// shift as holiday work. This is a weekday-name match, not a
	// concrete-date match.
	calc := newCalculator(t)
	holidays := []engine.Holiday{
		{Date: engine.NewDate(2026, time.June, 4), Name: "Festivo"}, // a Thursday
	}
	bd := compute(t, calc, []engine.ShiftSchedule{
		shift(t, "s1", "08:00", "16:00", "", time.Thursday),
	}, holidays)

	hoursEqual(t, bd.HolidayHours, 8)
	hoursEqual(t, bd.RegularHours, 0)
}

func TestComputePayroll_PeriodFiltersHolidays(t *testing.T) {
	// GIVEN: A Thursday holiday outside the billing period
	// WHEN: Computing with a period that excludes it
	// THEN: The Thursday shift classifies as regular

	calc := newCalculator(t)
	holidays := []engine.Holiday{
		{Date: engine.NewDate(2025, time.December, 25), Name: "Navidad"}, // a Thursday
	}
	shifts := []engine.ShiftSchedule{shift(t, "s1", "08:00", "16:00", "", time.Thursday)}

	bd, err := calc.ComputePayroll(shifts, holidays, engine.CalendarYear(2026))
	if err != nil {
		t.Fatalf("ComputePayroll: %v", err)
	}
	hoursEqual(t, bd.HolidayHours, 0)
	hoursEqual(t, bd.RegularHours, 8)

	// The same holiday inside the period flips the classification.
	bd, err = calc.ComputePayroll(shifts, holidays, engine.CalendarYear(2025))
	if err != nil {
		t.Fatalf("ComputePayroll: %v", err)
	}
	hoursEqual(t, bd.HolidayHours, 8)
}

func TestComputePayroll_NightHoursAreAdditive(t *testing.T) {
	// GIVEN: An evening shift 16:00-23:00
	// WHEN: Computing the breakdown
	// THEN: All 7 hours stay regular AND hours 21-22 also count as night

	calc := newCalculator(t)
	bd := compute(t, calc, []engine.ShiftSchedule{
		shift(t, "s1", "16:00", "23:00", "", time.Wednesday),
	}, nil)

	hoursEqual(t, bd.RegularHours, 7)
	hoursEqual(t, bd.NightHours, 2)
	hoursEqual(t, bd.WeeklyHours, 7)
}

func TestComputePayroll_ExclusiveBucketsPartitionWorkedHours(t *testing.T) {
	// Regular + overtime + sunday + holiday always equals the raw weekly
	// total; night sits outside the partition.
	calc := newCalculator(t)
	holidays := []engine.Holiday{
		{Date: engine.NewDate(2026, time.May, 1), Name: "Dia del Trabajo"}, // a Friday
	}
	bd := compute(t, calc, []engine.ShiftSchedule{
		shift(t, "s1", "08:00", "18:00", "01:00", time.Monday),
		shift(t, "s2", "14:00", "23:00", "", time.Friday),
		shift(t, "s3", "09:00", "13:00", "", time.Sunday),
	}, holidays)

	sum := bd.RegularHours.Add(bd.OvertimeHours).Add(bd.SundayHours).Add(bd.HolidayHours)
	if !sum.Value.Equal(bd.WeeklyHours.Value) {
		t.Errorf("buckets sum to %v, weekly total is %v", sum.Value, bd.WeeklyHours.Value)
	}
}

// =============================================================================
// WEEKLY CORRECTION TESTS
// =============================================================================

func TestComputePayroll_WeeklyCeilingMovesExcessToOvertime(t *testing.T) {
	// GIVEN: Six 8-hour weekday shifts, 48 raw hours
	// WHEN: Computing the breakdown
	// THEN: 4 hours above the 44-hour ceiling move from regular to overtime

	calc := newCalculator(t)
	var shifts []engine.ShiftSchedule
	days := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}
	for i, d := range days {
		shifts = append(shifts, shift(t, fmt.Sprintf("s%d", i), "08:00", "16:00", "", d))
	}

	bd := compute(t, calc, shifts, nil)
	hoursEqual(t, bd.WeeklyHours, 48)
	hoursEqual(t, bd.RegularHours, 44)
	hoursEqual(t, bd.OvertimeHours, 4)
}

func TestComputePayroll_WeeklyCorrectionClampsRegularAtZero(t *testing.T) {
	// GIVEN: Sunday shifts pushing the weekly total over the ceiling while
	//        the regular bucket holds nothing
	// WHEN: Applying the correction
	// THEN: Overtime still grows by the full excess; regular stays at zero

	calc := newCalculator(t)
	var shifts []engine.ShiftSchedule
	for i := 0; i < 6; i++ {
		shifts = append(shifts, shift(t, fmt.Sprintf("s%d", i), "08:00", "16:00", "", time.Sunday))
	}

	bd := compute(t, calc, shifts, nil)
	hoursEqual(t, bd.WeeklyHours, 48)
	hoursEqual(t, bd.SundayHours, 48)
	hoursEqual(t, bd.RegularHours, 0)
	hoursEqual(t, bd.OvertimeHours, 4)
}

// =============================================================================
// PRICING TESTS
// =============================================================================

func TestComputePayroll_PricesEachBucketIndependently(t *testing.T) {
	// GIVEN: A rate of 10000 and hours in several buckets
	// WHEN: Pricing
	// THEN: regular x1.0, overtime x1.25, night +0.75, sunday x1.75

	calc := newCalculator(t)
	bd := compute(t, calc, []engine.ShiftSchedule{
		shift(t, "s1", "08:00", "18:00", "", time.Monday),  // 8 regular + 2 overtime
		shift(t, "s2", "20:00", "23:00", "", time.Sunday),  // 3 sunday, 2 night
	}, nil)

	moneyEqual(t, bd.RegularAmount, 80000)       // 8 x 10000
	moneyEqual(t, bd.OvertimeAmount, 25000)      // 2 x 10000 x 1.25
	moneyEqual(t, bd.NightSurcharge, 15000)      // 2 x 10000 x 0.75
	moneyEqual(t, bd.SundaySurcharge, 52500)     // 3 x 10000 x 1.75
	moneyEqual(t, bd.TotalAmount, 172500)
}

func TestComputePayroll_HolidayPaysDouble(t *testing.T) {
	calc := newCalculator(t)
	holidays := []engine.Holiday{
		{Date: engine.NewDate(2026, time.July, 20), Name: "Independencia"}, // a Monday
	}
	bd := compute(t, calc, []engine.ShiftSchedule{
		shift(t, "s1", "08:00", "12:00", "", time.Monday),
	}, holidays)

	moneyEqual(t, bd.HolidaySurcharge, 80000) // 4 x 10000 x 2.0
	moneyEqual(t, bd.TotalAmount, 80000)
}

func TestComputePayroll_RateComesFromFirstPricedShift(t *testing.T) {
	calc := newCalculator(t)
	first := shift(t, "s1", "08:00", "12:00", "", time.Monday)
	first.HourlyRate = decimal.Zero
	second := shift(t, "s2", "13:00", "17:00", "", time.Tuesday)
	second.HourlyRate = decimal.NewFromInt(12500)

	bd := compute(t, calc, []engine.ShiftSchedule{first, second}, nil)
	if !bd.HourlyRate.Equal(decimal.NewFromInt(12500)) {
		t.Errorf("expected rate 12500, got %s", bd.HourlyRate)
	}
	moneyEqual(t, bd.RegularAmount, 100000) // 8h x 12500
}

// =============================================================================
// FAILURE AND EDGE TESTS
// =============================================================================

func TestComputePayroll_EmptyShiftsYieldZeroBreakdown(t *testing.T) {
	calc := newCalculator(t)
	bd := compute(t, calc, nil, nil)

	hoursEqual(t, bd.WeeklyHours, 0)
	moneyEqual(t, bd.TotalAmount, 0)
	if len(bd.Shifts) != 0 {
		t.Errorf("expected no detail rows, got %d", len(bd.Shifts))
	}
}

func TestComputePayroll_InvalidWindowFailsWhole(t *testing.T) {
	// GIVEN: One valid shift and one whose end precedes its start
	// WHEN: Computing
	// THEN: The whole computation fails; no partial totals survive

	calc := newCalculator(t)
	shifts := []engine.ShiftSchedule{
		shift(t, "good", "08:00", "16:00", "", time.Monday),
		shift(t, "bad", "20:00", "02:00", "", time.Tuesday),
	}

	bd, err := calc.ComputePayroll(shifts, nil, engine.Period{})
	if !errors.Is(err, engine.ErrInvalidShiftWindow) {
		t.Fatalf("expected ErrInvalidShiftWindow, got %v", err)
	}
	if !engine.IsClientError(err) {
		t.Errorf("window errors should classify as client errors")
	}
	hoursEqual(t, bd.WeeklyHours, 0)
	hoursEqual(t, bd.RegularHours, 0)
}

func TestComputePayroll_DetailRowsKeepInputOrder(t *testing.T) {
	calc := newCalculator(t)
	bd := compute(t, calc, []engine.ShiftSchedule{
		shift(t, "alpha", "08:00", "12:00", "", time.Monday),
		shift(t, "beta", "13:00", "17:00", "", time.Tuesday),
		shift(t, "gamma", "09:00", "13:00", "", time.Sunday),
	}, nil)

	want := []engine.ShiftID{"alpha", "beta", "gamma"}
	if len(bd.Shifts) != len(want) {
		t.Fatalf("expected %d detail rows, got %d", len(want), len(bd.Shifts))
	}
	for i, id := range want {
		if bd.Shifts[i].ShiftID != id {
			t.Errorf("row %d: expected %s, got %s", i, id, bd.Shifts[i].ShiftID)
		}
	}
}

func moneyEqual(t *testing.T, got engine.Amount, want float64) {
	t.Helper()
	if !got.Value.Equal(engine.Money(want).Value) {
		t.Errorf("expected %v, got %v", want, got.Value)
	}
}

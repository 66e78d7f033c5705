/*
payroll.go - The payroll calculator core

PURPOSE:
  Aggregates one employee's recurring shifts over a billing period into
  classified hour totals, then prices each bucket with the jurisdiction's
  surcharge table. This is the heart of the engine: calendar arithmetic,
  the wrap-at-midnight night window, and the non-linear legal pay rules
  all meet here.

CLASSIFICATION (per shift, mutually exclusive):
  1. Holiday: any of the shift's recurring weekdays coincides with the
     weekday of any holiday inside the period. This is a weekday-name
     match, NOT a concrete-date match; see the note on ClassifyShift.
  2. Sunday: the shift recurs on Sunday.
  3. Otherwise: hours up to MaxDailyHours are regular, the excess overtime.

  Night hours are ADDITIVE: they accumulate on top of whichever bucket the
  shift landed in and are priced as a pure surcharge.

WEEKLY CORRECTION:
  After summing all shifts, if WeeklyHours exceeds MaxWeeklyHours, the
  excess is moved out of RegularHours into OvertimeHours (regular clamped
  at zero). OvertimeHours grows by exactly the excess.

FAILURE SEMANTICS:
  Malformed shifts (end not after start) are a hard structural error.
  Zero shifts or an empty holiday list produce a zero-valued breakdown.
  Overlong or overlapping shifts are NOT this layer's judgment; the
  Overlap Validator and the surrounding UI own that.

SEE ALSO:
  - rules.go: The injected legal-constant table
  - alerts.go: Cross-employee compliance scanning built on this calculator
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator computes payroll breakdowns under one immutable rules table.
// It holds no other state and is safe for concurrent use.
type Calculator struct {
	rules LaborRules
}

func NewCalculator(rules LaborRules) *Calculator {
	return &Calculator{rules: rules}
}

func (c *Calculator) Rules() LaborRules { return c.rules }

// ComputePayroll aggregates shifts (all belonging to one employee) into a
// classified, priced breakdown. Holidays outside the period are ignored;
// a zero period keeps the whole list.
func (c *Calculator) ComputePayroll(shifts []ShiftSchedule, holidays []Holiday, period Period) (PayrollBreakdown, error) {
	bd := c.zeroBreakdown()

	if len(shifts) == 0 {
		return bd, nil
	}
	bd.EmployeeID = shifts[0].EmployeeID

	holidayDays := holidayWeekdays(holidays, period)

	for _, shift := range shifts {
		if err := ValidateWindow(shift.ID, shift.StartTime, shift.EndTime); err != nil {
			return c.zeroBreakdown(), err
		}

		if bd.HourlyRate.IsZero() && !shift.HourlyRate.IsZero() {
			bd.HourlyRate = shift.HourlyRate
		}

		dailyHours := DurationHours(shift.StartTime, shift.EndTime, shift.BreakDuration)
		shiftNight := HoursFromMinutes(c.rules.NightHours(shift.StartTime, shift.EndTime) * 60)

		bucket := c.ClassifyShift(shift, holidayDays)
		switch bucket {
		case BucketHoliday:
			bd.HolidayHours = bd.HolidayHours.Add(dailyHours)
		case BucketSunday:
			bd.SundayHours = bd.SundayHours.Add(dailyHours)
		default:
			regular := dailyHours.Min(Amount{Value: c.rules.MaxDailyHours, Unit: UnitHours})
			bd.RegularHours = bd.RegularHours.Add(regular)
			bd.OvertimeHours = bd.OvertimeHours.Add(dailyHours.Sub(regular))
		}

		bd.NightHours = bd.NightHours.Add(shiftNight)
		bd.WeeklyHours = bd.WeeklyHours.Add(dailyHours)
		excess := dailyHours.Sub(Amount{Value: c.rules.MaxDailyHours, Unit: UnitHours}).ClampZero()
		bd.DailyHoursExceeded = bd.DailyHoursExceeded.Add(excess)

		bd.Shifts = append(bd.Shifts, ShiftDetail{
			ShiftID:    shift.ID,
			Hours:      dailyHours,
			NightHours: shiftNight,
			Bucket:     bucket,
		})
	}

	c.applyWeeklyCorrection(&bd)
	c.price(&bd)
	return bd, nil
}

// ClassifyShift decides the exclusive bucket a shift's hours land in.
//
// Holiday classification matches the shift's recurring weekdays against the
// weekdays the period's holidays fall on, rather than checking concrete
// dates. A Thursday shift counts as holiday work for the whole period when
// any holiday in the period lands on a Thursday. This loose matching is the
// platform's established billing behavior and is kept for compatibility;
// date-accurate classification would need dated shift instances, which the
// recurring model does not carry.
func (c *Calculator) ClassifyShift(shift ShiftSchedule, holidayDays DaySet) HourBucket {
	if shift.DaysOfWeek.Intersects(holidayDays) {
		return BucketHoliday
	}
	if shift.DaysOfWeek.Has(time.Sunday) {
		return BucketSunday
	}
	return BucketRegular
}

// applyWeeklyCorrection moves hours above the weekly ceiling out of the
// regular bucket into overtime. Overtime grows by exactly the excess even
// when regular hours cannot cover it; regular is clamped at zero.
func (c *Calculator) applyWeeklyCorrection(bd *PayrollBreakdown) {
	maxWeekly := Amount{Value: c.rules.MaxWeeklyHours, Unit: UnitHours}
	if !bd.WeeklyHours.GreaterThan(maxWeekly) {
		return
	}
	excess := bd.WeeklyHours.Sub(maxWeekly)
	bd.OvertimeHours = bd.OvertimeHours.Add(excess)
	bd.RegularHours = bd.RegularHours.Sub(excess).ClampZero()
}

// price computes the monetary amounts: each hour type priced independently
// against the employee's base rate, night as a pure additive surcharge.
func (c *Calculator) price(bd *PayrollBreakdown) {
	rate := bd.HourlyRate

	bd.RegularAmount = money(bd.RegularHours.Value.Mul(rate))
	bd.OvertimeAmount = money(bd.OvertimeHours.Value.Mul(rate).Mul(c.rules.overtimeMultiplier()))
	bd.NightSurcharge = money(bd.NightHours.Value.Mul(rate).Mul(c.rules.NightSurcharge))
	bd.SundaySurcharge = money(bd.SundayHours.Value.Mul(rate).Mul(c.rules.sundayMultiplier()))
	bd.HolidaySurcharge = money(bd.HolidayHours.Value.Mul(rate).Mul(c.rules.holidayMultiplier()))

	bd.TotalAmount = bd.RegularAmount.
		Add(bd.OvertimeAmount).
		Add(bd.NightSurcharge).
		Add(bd.SundaySurcharge).
		Add(bd.HolidaySurcharge)
}

func (c *Calculator) zeroBreakdown() PayrollBreakdown {
	return PayrollBreakdown{
		RegularHours:       Hours(0),
		OvertimeHours:      Hours(0),
		NightHours:         Hours(0),
		SundayHours:        Hours(0),
		HolidayHours:       Hours(0),
		WeeklyHours:        Hours(0),
		DailyHoursExceeded: Hours(0),
		RegularAmount:      Money(0),
		OvertimeAmount:     Money(0),
		NightSurcharge:     Money(0),
		SundaySurcharge:    Money(0),
		HolidaySurcharge:   Money(0),
		TotalAmount:        Money(0),
	}
}

// holidayWeekdays collects the weekdays the period's holidays fall on.
// A zero period keeps every holiday in the list.
func holidayWeekdays(holidays []Holiday, period Period) DaySet {
	var days DaySet
	for _, h := range holidays {
		if !period.IsZero() && !period.Contains(h.Date) {
			continue
		}
		days = days.With(h.Date.Weekday())
	}
	return days
}

func money(v decimal.Decimal) Amount { return Amount{Value: v, Unit: UnitMoney} }

/*
Package engine provides the core shift-hour classification and payroll engine.

PURPOSE:
  This package contains the pure computation layer for staff scheduling:
  worked-hour durations, classification of hours into legal buckets
  (regular/overtime/night/Sunday/holiday), monetary surcharges per bucket,
  shift overlap detection, and legal-compliance alerts.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A quantity with a unit (hours worked, or money)
  - DaySet: Fixed weekday bitset for recurring assignments
  - ShiftSchedule: One recurring weekly shift for an employee
  - PayrollBreakdown: Classified hour totals and amounts for one employee
  - ComplianceAlert: Structured legal-limit warning/error/info

DESIGN PRINCIPLES:
  1. Purity: every entry point is a function of caller-supplied collections;
     no I/O, no shared mutable state, safe for concurrent callers
  2. Precision: uses decimal.Decimal to avoid floating-point drift across
     repeated surcharge multiplications
  3. Structured results: policy violations (overlap, legal limits) are
     values, never errors; only malformed input fails a call
  4. Injected rules: the legal-constant table is an immutable LaborRules
     value passed in at construction, never a package-level table

USAGE:
  calc := engine.NewCalculator(colombia.Rules())
  breakdown, err := calc.ComputePayroll(shifts, holidays, period)

SEE ALSO:
  - rules.go: LaborRules, the injected legal-constant table
  - payroll.go: Calculator, the aggregation core
  - overlap.go: Conflict detection between shifts
  - alerts.go: Compliance alert generation
*/
package engine

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit (hours worked or money)
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitHours Unit = "hours"
	UnitMoney Unit = "money"
)

func NewAmount(value float64, unit Unit) Amount {
	return Amount{Value: decimal.NewFromFloat(value), Unit: unit}
}

func NewAmountFromInt(value int, unit Unit) Amount {
	return Amount{Value: decimal.NewFromInt(int64(value)), Unit: unit}
}

// Hours builds an hour quantity.
func Hours(value float64) Amount { return NewAmount(value, UnitHours) }

// HoursFromMinutes builds an exact hour quantity from whole minutes.
func HoursFromMinutes(minutes int) Amount {
	return Amount{
		Value: decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)),
		Unit:  UnitHours,
	}
}

// Money builds a monetary amount in the caller's currency unit.
func Money(value float64) Amount { return NewAmount(value, UnitMoney) }

func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (a Amount) Zero() Amount                 { return Amount{Value: decimal.Zero, Unit: a.Unit} }
func (a Amount) Add(b Amount) Amount          { return Amount{Value: a.Value.Add(b.Value), Unit: a.Unit} }
func (a Amount) Sub(b Amount) Amount          { return Amount{Value: a.Value.Sub(b.Value), Unit: a.Unit} }
func (a Amount) Mul(s decimal.Decimal) Amount { return Amount{Value: a.Value.Mul(s), Unit: a.Unit} }
func (a Amount) Neg() Amount                  { return Amount{Value: a.Value.Neg(), Unit: a.Unit} }
func (a Amount) IsNegative() bool             { return a.Value.IsNegative() }
func (a Amount) IsZero() bool                 { return a.Value.IsZero() }
func (a Amount) IsPositive() bool             { return a.Value.IsPositive() }
func (a Amount) GreaterThan(b Amount) bool    { return a.Value.GreaterThan(b.Value) }
func (a Amount) LessThan(b Amount) bool       { return a.Value.LessThan(b.Value) }
func (a Amount) Min(b Amount) Amount          { if a.LessThan(b) { return a }; return b }
func (a Amount) Max(b Amount) Amount          { if a.GreaterThan(b) { return a }; return b }

// ClampZero floors a quantity at zero. Worked-hour results are never negative.
func (a Amount) ClampZero() Amount {
	if a.IsNegative() {
		return a.Zero()
	}
	return a
}

func (a Amount) Float64() float64 {
	f, _ := a.Value.Float64()
	return f
}

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string
type ShiftID string

// =============================================================================
// DAY SET - Fixed weekday bitset for recurring assignments
// =============================================================================

// DaySet is a bitset of weekdays on which a shift recurs. It replaces
// free-form weekday string lists so membership checks are exact and
// locale-independent.
type DaySet uint8

const (
	Sunday    DaySet = 1 << time.Sunday
	Monday    DaySet = 1 << time.Monday
	Tuesday   DaySet = 1 << time.Tuesday
	Wednesday DaySet = 1 << time.Wednesday
	Thursday  DaySet = 1 << time.Thursday
	Friday    DaySet = 1 << time.Friday
	Saturday  DaySet = 1 << time.Saturday

	Weekdays DaySet = Monday | Tuesday | Wednesday | Thursday | Friday
	AllDays  DaySet = Weekdays | Saturday | Sunday
)

func Days(days ...time.Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		s |= 1 << d
	}
	return s
}

func (s DaySet) Has(d time.Weekday) bool     { return s&(1<<d) != 0 }
func (s DaySet) Intersects(o DaySet) bool    { return s&o != 0 }
func (s DaySet) With(d time.Weekday) DaySet  { return s | 1<<d }
func (s DaySet) IsEmpty() bool               { return s == 0 }

// List returns the member weekdays in Sunday-first order.
func (s DaySet) List() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s DaySet) String() string {
	var names []string
	for _, d := range s.List() {
		names = append(names, strings.ToLower(d.String()))
	}
	return strings.Join(names, ",")
}

// ParseDay resolves a weekday identifier ("monday", "Mon", ...) to a weekday.
// Unknown identifiers are a parse failure naming the offending value.
func ParseDay(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	case "tuesday", "tue", "tues":
		return time.Tuesday, nil
	case "wednesday", "wed":
		return time.Wednesday, nil
	case "thursday", "thu", "thur", "thurs":
		return time.Thursday, nil
	case "friday", "fri":
		return time.Friday, nil
	case "saturday", "sat":
		return time.Saturday, nil
	default:
		return 0, &ParseError{Field: "daysOfWeek", Value: name, Reason: "unknown weekday"}
	}
}

// ParseDays resolves a list of weekday identifiers into a DaySet.
func ParseDays(names []string) (DaySet, error) {
	var s DaySet
	for _, n := range names {
		d, err := ParseDay(n)
		if err != nil {
			return 0, err
		}
		s = s.With(d)
	}
	return s, nil
}

// =============================================================================
// SHIFT SCHEDULE - One recurring weekly assignment
// =============================================================================

// ShiftSchedule is one recurring weekly shift for an employee. The engine
// only ever reads collections of these; it never mutates them.
//
// Invariant: StartTime < EndTime on the same nominal day. Shifts crossing
// midnight are rejected at parse/compute time, not silently wrapped.
type ShiftSchedule struct {
	ID                 ShiftID
	EmployeeID         EmployeeID
	StartTime          ClockTime
	EndTime            ClockTime
	BreakDuration      ClockTime // a duration to subtract, not an interval
	DaysOfWeek         DaySet
	HourlyRate         decimal.Decimal // base wage before surcharges
	OvertimeAuthorized bool
}

// =============================================================================
// HOLIDAY - A dated legal holiday
// =============================================================================

type Holiday struct {
	Date Date
	Name string
}

// =============================================================================
// PAYROLL BREAKDOWN - Computed, never stored
// =============================================================================

// PayrollBreakdown is the classified hour totals and monetary amounts for one
// employee over a period. It is a pure function's output and has no identity
// or lifecycle beyond the call that produced it.
//
// NightHours is an additive surcharge quantity: an hour can count toward
// RegularHours (or OvertimeHours) AND NightHours at the same time. The other
// four buckets are mutually exclusive per shift.
type PayrollBreakdown struct {
	EmployeeID EmployeeID
	HourlyRate decimal.Decimal

	RegularHours  Amount
	OvertimeHours Amount
	NightHours    Amount
	SundayHours   Amount
	HolidayHours  Amount

	// WeeklyHours is the raw pre-classification hour total across all shifts.
	WeeklyHours Amount
	// DailyHoursExceeded accumulates per-shift excess over the daily limit.
	DailyHoursExceeded Amount

	RegularAmount   Amount
	OvertimeAmount  Amount
	NightSurcharge  Amount
	SundaySurcharge Amount
	HolidaySurcharge Amount
	TotalAmount     Amount

	// Shifts carries the per-shift detail rows in input order.
	Shifts []ShiftDetail
}

// ShiftDetail is the per-shift contribution to a breakdown.
type ShiftDetail struct {
	ShiftID    ShiftID
	Hours      Amount
	NightHours Amount
	Bucket     HourBucket
}

// HourBucket names the exclusive classification a shift's hours landed in.
type HourBucket string

const (
	BucketRegular  HourBucket = "regular"  // up to the daily limit; excess is overtime
	BucketSunday   HourBucket = "sunday"
	BucketHoliday  HourBucket = "holiday"
)

// =============================================================================
// OVERLAP RESULT - Structured conflict report
// =============================================================================

// OverlapResult reports time conflicts between a candidate shift and the
// employee's already-assigned shifts. It is always a value, never an error;
// the caller decides whether to block submission.
type OverlapResult struct {
	HasConflict bool
	Conflicts   []ShiftSchedule
}

// =============================================================================
// COMPLIANCE ALERT - Structured legal-limit finding
// =============================================================================

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

type ComplianceAlert struct {
	Severity   Severity
	Message    string
	EmployeeID EmployeeID
}

/*
rules.go - LaborRules, the injected legal-constant table

PURPOSE:
  Every legally mandated threshold and surcharge percentage lives in a
  LaborRules value. The table is immutable configuration: build it once at
  process start (or once per tenant when jurisdictions differ), validate it,
  and pass it into NewCalculator. Nothing in this package reaches for a
  package-level table, so concurrent computations under different
  jurisdictions never interfere.

SURCHARGE SEMANTICS:
  Stored values are surcharge fractions on top of the base rate. The
  multiplier actually applied to an hour is:

    regular   hourlyRate * 1.0
    overtime  hourlyRate * (1 + OvertimeSurcharge)       e.g. 1.25
    night     hourlyRate * NightSurcharge  (additive)    e.g. 0.75
    sunday    hourlyRate * (1 + SundaySurcharge)         e.g. 1.75
    holiday   hourlyRate * (1 + HolidaySurcharge)        e.g. 2.00

  Night pay is a pure surcharge: those hours are already priced in whichever
  exclusive bucket they fell into, and the night fraction is added on top.

SEE ALSO:
  - colombia/rules.go: The Colombian statutory preset
  - factory/rules.go: JSON-configured rules for per-tenant tables
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LABOR RULES - Jurisdiction-specific legal constants
// =============================================================================

type LaborRules struct {
	// Hour limits
	MaxDailyHours  decimal.Decimal // hours per shift before overtime, e.g. 8
	MaxWeeklyHours decimal.Decimal // legal weekly ceiling, e.g. 44
	MonthlyHours   decimal.Decimal // divisor deriving an hourly rate from a monthly wage, e.g. 220

	// Surcharge fractions (on top of the base rate)
	OvertimeSurcharge decimal.Decimal // e.g. 0.25
	NightSurcharge    decimal.Decimal // e.g. 0.75, additive on top of the hour's bucket
	SundaySurcharge   decimal.Decimal // e.g. 0.75
	HolidaySurcharge  decimal.Decimal // e.g. 1.00

	// Night window, wrapping across midnight, both boundary hours included
	NightStartHour int // e.g. 21
	NightEndHour   int // e.g. 6

	// NightHoursAlertThreshold is the monthly night-hour count above which an
	// informational compliance alert is raised.
	NightHoursAlertThreshold decimal.Decimal
}

// Validate checks the table for values the calculator cannot work with.
func (r LaborRules) Validate() error {
	if !r.MaxDailyHours.IsPositive() {
		return fmt.Errorf("%w: max daily hours must be positive, got %s", ErrInvalidRules, r.MaxDailyHours)
	}
	if !r.MaxWeeklyHours.IsPositive() {
		return fmt.Errorf("%w: max weekly hours must be positive, got %s", ErrInvalidRules, r.MaxWeeklyHours)
	}
	if !r.MonthlyHours.IsPositive() {
		return fmt.Errorf("%w: monthly hours must be positive, got %s", ErrInvalidRules, r.MonthlyHours)
	}
	if r.OvertimeSurcharge.IsNegative() || r.NightSurcharge.IsNegative() ||
		r.SundaySurcharge.IsNegative() || r.HolidaySurcharge.IsNegative() {
		return fmt.Errorf("%w: surcharge fractions must be non-negative", ErrInvalidRules)
	}
	if r.NightStartHour < 0 || r.NightStartHour > 23 {
		return fmt.Errorf("%w: night start hour %d out of range", ErrInvalidRules, r.NightStartHour)
	}
	if r.NightEndHour < 0 || r.NightEndHour > 23 {
		return fmt.Errorf("%w: night end hour %d out of range", ErrInvalidRules, r.NightEndHour)
	}
	return nil
}

// HourlyRateFromMonthly derives a default hourly rate from a monthly wage
// (typically the legal minimum) using the jurisdiction's monthly hour count.
func (r LaborRules) HourlyRateFromMonthly(monthlyWage decimal.Decimal) decimal.Decimal {
	return monthlyWage.Div(r.MonthlyHours)
}

// IsNightHour reports whether a whole clock hour falls inside the night
// window. The window wraps across midnight and includes both boundary hours.
func (r LaborRules) IsNightHour(hour int) bool {
	return hour >= r.NightStartHour || hour <= r.NightEndHour
}

// Multipliers derived from the surcharge fractions.

func (r LaborRules) overtimeMultiplier() decimal.Decimal {
	return decimal.NewFromInt(1).Add(r.OvertimeSurcharge)
}

func (r LaborRules) sundayMultiplier() decimal.Decimal {
	return decimal.NewFromInt(1).Add(r.SundaySurcharge)
}

func (r LaborRules) holidayMultiplier() decimal.Decimal {
	return decimal.NewFromInt(1).Add(r.HolidaySurcharge)
}

/*
Package colombia provides the Colombian statutory labor table and holiday
calendar for the shift engine.

PURPOSE:
  The engine package is jurisdiction-agnostic: it takes an immutable
  LaborRules value and a dated holiday list. This package supplies both for
  Colombia: the Código Sustantivo del Trabajo hour limits and surcharges,
  and the national holiday calendar including the Ley 51 de 1983 (Emiliani)
  Monday-shift rule.

USAGE:
  calc := engine.NewCalculator(colombia.Rules())
  cal, err := colombia.CalendarFor(2026)
  breakdown, err := calc.ComputePayroll(shifts, cal.Holidays(), period)

SEE ALSO:
  - holidays.go: The national holiday table and Easter dates
  - engine/rules.go: The LaborRules contract
*/
package colombia

import (
	"github.com/shopspring/decimal"
	"github.com/turno/shift-engine/engine"
)

// =============================================================================
// STATUTORY CONSTANTS
// =============================================================================

// Rules returns the Colombian legal-constant table:
//
//	max ordinary shift      8 h/day
//	max ordinary week       44 h
//	monthly divisor         220 h (derives hourly rate from a monthly wage)
//	overtime surcharge      25%
//	night surcharge         75% (additive, 21:00-06:00)
//	sunday surcharge        75%
//	holiday surcharge       100%
func Rules() engine.LaborRules {
	return engine.LaborRules{
		MaxDailyHours:  decimal.NewFromInt(8),
		MaxWeeklyHours: decimal.NewFromInt(44),
		MonthlyHours:   decimal.NewFromInt(220),

		OvertimeSurcharge: decimal.NewFromFloat(0.25),
		NightSurcharge:    decimal.NewFromFloat(0.75),
		SundaySurcharge:   decimal.NewFromFloat(0.75),
		HolidaySurcharge:  decimal.NewFromInt(1),

		NightStartHour: 21,
		NightEndHour:   6,

		NightHoursAlertThreshold: decimal.NewFromInt(20),
	}
}

// MinimumHourlyRate derives the default hourly rate from a monthly minimum
// wage in pesos.
func MinimumHourlyRate(monthlyMinimumWage decimal.Decimal) decimal.Decimal {
	return Rules().HourlyRateFromMonthly(monthlyMinimumWage)
}

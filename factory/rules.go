/*
Package factory provides JSON to Go labor-rules conversion.

PURPOSE:
  Converts JSON jurisdiction definitions into engine.LaborRules values and
  dated holiday calendars. This enables per-tenant configuration without
  code changes - an agency operating under a different jurisdiction or a
  new statutory year ships a JSON table, and the factory builds the proper
  Go values.

JSON SCHEMA:
  {
    "name": "colombia-2026",
    "max_daily_hours": 8,
    "max_weekly_hours": 44,
    "monthly_hours": 220,
    "overtime_surcharge": 0.25,
    "night_surcharge": 0.75,
    "sunday_surcharge": 0.75,
    "holiday_surcharge": 1.0,
    "night_start_hour": 21,
    "night_end_hour": 6,
    "night_alert_threshold": 20,
    "holidays": [
      {"name": "Año Nuevo", "month": 1, "day": 1},
      {"name": "Reyes Magos", "month": 1, "day": 6, "shift_to_monday": true},
      {"name": "Viernes Santo", "easter_offset": -2},
      {"name": "Ascensión", "easter_offset": 39, "shift_to_monday": true}
    ],
    "easter_sunday": "2026-04-05"
  }

KEY FEATURES:
  - Validates the parsed rules table (engine.LaborRules.Validate)
  - Sets sensible defaults for omitted surcharges and the night window
  - Resolves the holiday list into concrete dates for a target year

USAGE:
  f := factory.NewRulesFactory()
  rules, cal, err := f.Parse(jsonBytes, 2026)

SEE ALSO:
  - engine/rules.go: LaborRules contract
  - colombia/: The compiled-in Colombian preset
*/
package factory

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/turno/shift-engine/engine"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// RulesJSON is the JSON representation of a jurisdiction.
type RulesJSON struct {
	Name string `json:"name"`

	MaxDailyHours  float64 `json:"max_daily_hours"`
	MaxWeeklyHours float64 `json:"max_weekly_hours"`
	MonthlyHours   float64 `json:"monthly_hours"`

	OvertimeSurcharge *float64 `json:"overtime_surcharge,omitempty"`
	NightSurcharge    *float64 `json:"night_surcharge,omitempty"`
	SundaySurcharge   *float64 `json:"sunday_surcharge,omitempty"`
	HolidaySurcharge  *float64 `json:"holiday_surcharge,omitempty"`

	NightStartHour      *int     `json:"night_start_hour,omitempty"`
	NightEndHour        *int     `json:"night_end_hour,omitempty"`
	NightAlertThreshold *float64 `json:"night_alert_threshold,omitempty"`

	Holidays     []HolidayJSON `json:"holidays,omitempty"`
	EasterSunday string        `json:"easter_sunday,omitempty"`
}

// HolidayJSON represents one annual holiday rule. A rule is Easter-relative
// when easter_offset is set; otherwise month/day name a fixed date.
type HolidayJSON struct {
	Name          string `json:"name"`
	Month         int    `json:"month,omitempty"`
	Day           int    `json:"day,omitempty"`
	EasterOffset  *int   `json:"easter_offset,omitempty"`
	ShiftToMonday bool   `json:"shift_to_monday,omitempty"`
}

// Defaults applied when the JSON omits a field.
const (
	defaultOvertimeSurcharge = 0.25
	defaultNightSurcharge    = 0.75
	defaultSundaySurcharge   = 0.75
	defaultHolidaySurcharge  = 1.0
	defaultNightStartHour    = 21
	defaultNightEndHour      = 6
	defaultNightAlert        = 20.0
)

// =============================================================================
// RULES FACTORY
// =============================================================================

type RulesFactory struct{}

func NewRulesFactory() *RulesFactory { return &RulesFactory{} }

// Parse converts a JSON jurisdiction definition into a validated LaborRules
// table plus the holiday calendar resolved for the target year. A definition
// without holidays yields a nil calendar.
func (f *RulesFactory) Parse(data []byte, year int) (engine.LaborRules, *engine.Calendar, error) {
	var rj RulesJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return engine.LaborRules{}, nil, fmt.Errorf("invalid rules JSON: %w", err)
	}
	return f.Build(rj, year)
}

// Build converts an already-decoded definition.
func (f *RulesFactory) Build(rj RulesJSON, year int) (engine.LaborRules, *engine.Calendar, error) {
	rules := engine.LaborRules{
		MaxDailyHours:  decimal.NewFromFloat(rj.MaxDailyHours),
		MaxWeeklyHours: decimal.NewFromFloat(rj.MaxWeeklyHours),
		MonthlyHours:   decimal.NewFromFloat(rj.MonthlyHours),

		OvertimeSurcharge: decimalOrDefault(rj.OvertimeSurcharge, defaultOvertimeSurcharge),
		NightSurcharge:    decimalOrDefault(rj.NightSurcharge, defaultNightSurcharge),
		SundaySurcharge:   decimalOrDefault(rj.SundaySurcharge, defaultSundaySurcharge),
		HolidaySurcharge:  decimalOrDefault(rj.HolidaySurcharge, defaultHolidaySurcharge),

		NightStartHour: intOrDefault(rj.NightStartHour, defaultNightStartHour),
		NightEndHour:   intOrDefault(rj.NightEndHour, defaultNightEndHour),

		NightHoursAlertThreshold: decimalOrDefault(rj.NightAlertThreshold, defaultNightAlert),
	}

	if err := rules.Validate(); err != nil {
		return engine.LaborRules{}, nil, err
	}

	if len(rj.Holidays) == 0 {
		return rules, nil, nil
	}

	defs, needEaster, err := f.holidayDefs(rj.Holidays)
	if err != nil {
		return engine.LaborRules{}, nil, err
	}

	var easter engine.Date
	if needEaster {
		if rj.EasterSunday == "" {
			return engine.LaborRules{}, nil, fmt.Errorf("holiday table has Easter-relative entries but no easter_sunday date")
		}
		easter, err = engine.ParseDate(rj.EasterSunday)
		if err != nil {
			return engine.LaborRules{}, nil, err
		}
		if easter.Year() != year {
			return engine.LaborRules{}, nil, fmt.Errorf("easter_sunday %s is not in year %d", easter, year)
		}
	}

	return rules, engine.NewCalendar(year, easter, defs), nil
}

func (f *RulesFactory) holidayDefs(hs []HolidayJSON) ([]engine.HolidayDef, bool, error) {
	defs := make([]engine.HolidayDef, 0, len(hs))
	needEaster := false

	for _, h := range hs {
		def := engine.HolidayDef{Name: h.Name, ShiftToMonday: h.ShiftToMonday}
		switch {
		case h.EasterOffset != nil:
			def.Kind = engine.KindEasterRelative
			def.EasterOffset = *h.EasterOffset
			needEaster = true
		case h.Month >= 1 && h.Month <= 12 && h.Day >= 1 && h.Day <= 31:
			def.Kind = engine.KindFixed
			def.Month = time.Month(h.Month)
			def.Day = h.Day
		default:
			return nil, false, fmt.Errorf("holiday %q needs either month/day or easter_offset", h.Name)
		}
		defs = append(defs, def)
	}
	return defs, needEaster, nil
}

func decimalOrDefault(v *float64, def float64) decimal.Decimal {
	if v != nil {
		return decimal.NewFromFloat(*v)
	}
	return decimal.NewFromFloat(def)
}

func intOrDefault(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

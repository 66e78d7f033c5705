/*
holidays.go - The Colombian national holiday table

PURPOSE:
  Eighteen national holidays in three categories:

  1. Fixed: observed on their civil date regardless of weekday.
  2. Emiliani (Ley 51 de 1983): moved to the following Monday when the
     nominal date falls Tuesday through Saturday.
  3. Easter-relative: offsets from Easter Sunday. Holy Thursday and Good
     Friday are observed in place; Ascension, Corpus Christi and Sacred
     Heart additionally take the Monday shift.

  Easter Sunday dates are precomputed per year rather than derived by a
  computus at runtime; the supported span is the easterSundays table.
*/
package colombia

import (
	"fmt"
	"time"

	"github.com/turno/shift-engine/engine"
)

// =============================================================================
// HOLIDAY DEFINITIONS
// =============================================================================

// HolidayDefs returns the national table as engine definitions.
func HolidayDefs() []engine.HolidayDef {
	return []engine.HolidayDef{
		// Fixed, observed in place
		{Name: "Año Nuevo", Kind: engine.KindFixed, Month: time.January, Day: 1},
		{Name: "Día del Trabajo", Kind: engine.KindFixed, Month: time.May, Day: 1},
		{Name: "Día de la Independencia", Kind: engine.KindFixed, Month: time.July, Day: 20},
		{Name: "Batalla de Boyacá", Kind: engine.KindFixed, Month: time.August, Day: 7},
		{Name: "Inmaculada Concepción", Kind: engine.KindFixed, Month: time.December, Day: 8},
		{Name: "Navidad", Kind: engine.KindFixed, Month: time.December, Day: 25},

		// Emiliani: shifted to the following Monday
		{Name: "Reyes Magos", Kind: engine.KindFixed, Month: time.January, Day: 6, ShiftToMonday: true},
		{Name: "San José", Kind: engine.KindFixed, Month: time.March, Day: 19, ShiftToMonday: true},
		{Name: "San Pedro y San Pablo", Kind: engine.KindFixed, Month: time.June, Day: 29, ShiftToMonday: true},
		{Name: "Asunción de la Virgen", Kind: engine.KindFixed, Month: time.August, Day: 15, ShiftToMonday: true},
		{Name: "Día de la Raza", Kind: engine.KindFixed, Month: time.October, Day: 12, ShiftToMonday: true},
		{Name: "Todos los Santos", Kind: engine.KindFixed, Month: time.November, Day: 1, ShiftToMonday: true},
		{Name: "Independencia de Cartagena", Kind: engine.KindFixed, Month: time.November, Day: 11, ShiftToMonday: true},

		// Easter-relative, observed in place
		{Name: "Jueves Santo", Kind: engine.KindEasterRelative, EasterOffset: -3},
		{Name: "Viernes Santo", Kind: engine.KindEasterRelative, EasterOffset: -2},

		// Easter-relative, shifted to the following Monday
		{Name: "Ascensión del Señor", Kind: engine.KindEasterRelative, EasterOffset: 39, ShiftToMonday: true},
		{Name: "Corpus Christi", Kind: engine.KindEasterRelative, EasterOffset: 60, ShiftToMonday: true},
		{Name: "Sagrado Corazón", Kind: engine.KindEasterRelative, EasterOffset: 68, ShiftToMonday: true},
	}
}

// easterSundays holds precomputed Western Easter Sunday dates.
var easterSundays = map[int]engine.Date{
	2023: engine.NewDate(2023, time.April, 9),
	2024: engine.NewDate(2024, time.March, 31),
	2025: engine.NewDate(2025, time.April, 20),
	2026: engine.NewDate(2026, time.April, 5),
	2027: engine.NewDate(2027, time.March, 28),
	2028: engine.NewDate(2028, time.April, 16),
	2029: engine.NewDate(2029, time.April, 1),
	2030: engine.NewDate(2030, time.April, 21),
}

// EasterSunday returns the precomputed Easter Sunday for a year.
func EasterSunday(year int) (engine.Date, error) {
	d, ok := easterSundays[year]
	if !ok {
		return engine.Date{}, fmt.Errorf("no Easter date precomputed for year %d", year)
	}
	return d, nil
}

// CalendarFor resolves the national table into a dated calendar for a year.
func CalendarFor(year int) (*engine.Calendar, error) {
	easter, err := EasterSunday(year)
	if err != nil {
		return nil, err
	}
	return engine.NewCalendar(year, easter, HolidayDefs()), nil
}

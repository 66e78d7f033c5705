/*
calendar.go - Holiday calendar resolution and queries

PURPOSE:
  Resolves a jurisdiction's annual holiday definitions into concrete dates
  for a year and answers membership and working-day queries. Definitions
  come in three flavors:

  1. Fixed-date: always the same month/day.
  2. Monday-shifted: a nominal month/day that moves to the following Monday
     when it falls Tuesday through Saturday.
  3. Easter-relative: an offset in days from Easter Sunday, whose date is
     precomputed per year and supplied by the jurisdiction package.
     Easter-relative holidays may also be Monday-shifted.

USAGE:
  cal := engine.NewCalendar(2026, easter2026, colombia.HolidayDefs())
  name, ok := cal.IsHoliday(engine.NewDate(2026, time.July, 20))
  n := cal.WorkingDaysBetween(start, end)

SEE ALSO:
  - colombia/holidays.go: The Colombian national table and Easter dates
  - factory/rules.go: JSON-configured holiday tables
*/
package engine

import (
	"sort"
	"time"
)

// =============================================================================
// HOLIDAY DEFINITIONS
// =============================================================================

type HolidayKind string

const (
	KindFixed          HolidayKind = "fixed"
	KindEasterRelative HolidayKind = "easter_relative"
)

// HolidayDef is one annual holiday rule, resolved per year by NewCalendar.
type HolidayDef struct {
	Name string
	Kind HolidayKind

	// For KindFixed: the nominal month and day.
	Month time.Month
	Day   int

	// For KindEasterRelative: days from Easter Sunday (negative = before).
	EasterOffset int

	// ShiftToMonday moves the resolved date to the following Monday when it
	// falls Tuesday through Saturday.
	ShiftToMonday bool
}

// Resolve computes the concrete observed date for a year. Easter Sunday must
// be supplied for Easter-relative definitions.
func (d HolidayDef) Resolve(year int, easter Date) Date {
	var date Date
	switch d.Kind {
	case KindEasterRelative:
		date = easter.AddDays(d.EasterOffset)
	default:
		date = NewDate(year, d.Month, d.Day)
	}
	if d.ShiftToMonday {
		date = shiftToFollowingMonday(date)
	}
	return date
}

func shiftToFollowingMonday(d Date) Date {
	wd := d.Weekday()
	if wd >= time.Tuesday && wd <= time.Saturday {
		return d.AddDays(int(time.Monday) + 7 - int(wd))
	}
	return d
}

// =============================================================================
// CALENDAR - Resolved holidays for one year
// =============================================================================

type Calendar struct {
	year     int
	holidays []Holiday
	byDate   map[string]string // "YYYY-MM-DD" -> name
}

// NewCalendar resolves the definitions for a year. The table is immutable
// once built and safe for concurrent readers.
func NewCalendar(year int, easter Date, defs []HolidayDef) *Calendar {
	cal := &Calendar{year: year, byDate: make(map[string]string, len(defs))}
	for _, def := range defs {
		date := def.Resolve(year, easter)
		cal.holidays = append(cal.holidays, Holiday{Date: date, Name: def.Name})
		cal.byDate[date.String()] = def.Name
	}
	sort.Slice(cal.holidays, func(i, j int) bool {
		return cal.holidays[i].Date.Before(cal.holidays[j].Date)
	})
	return cal
}

// NewCalendarFromHolidays wraps an already-dated holiday list (for example
// loaded from storage) in the same query surface.
func NewCalendarFromHolidays(year int, holidays []Holiday) *Calendar {
	cal := &Calendar{year: year, byDate: make(map[string]string, len(holidays))}
	cal.holidays = append(cal.holidays, holidays...)
	sort.Slice(cal.holidays, func(i, j int) bool {
		return cal.holidays[i].Date.Before(cal.holidays[j].Date)
	})
	for _, h := range cal.holidays {
		cal.byDate[h.Date.String()] = h.Name
	}
	return cal
}

func (c *Calendar) Year() int { return c.year }

// Holidays returns the resolved table in date order.
func (c *Calendar) Holidays() []Holiday {
	out := make([]Holiday, len(c.holidays))
	copy(out, c.holidays)
	return out
}

// IsHoliday reports whether the date is in the table, and the holiday name.
func (c *Calendar) IsHoliday(d Date) (string, bool) {
	name, ok := c.byDate[d.String()]
	return name, ok
}

// FallsOn reports whether any holiday in the table lands on the weekday.
func (c *Calendar) FallsOn(wd time.Weekday) bool {
	for _, h := range c.holidays {
		if h.Date.Weekday() == wd {
			return true
		}
	}
	return false
}

// WorkingDaysBetween counts days in [start, end] (both endpoints included)
// that are neither Saturday, Sunday, nor a holiday.
func (c *Calendar) WorkingDaysBetween(start, end Date) int {
	count := 0
	for d := start; d.BeforeOrEqual(end); d = d.AddDays(1) {
		if d.IsWeekend() {
			continue
		}
		if _, holiday := c.IsHoliday(d); holiday {
			continue
		}
		count++
	}
	return count
}

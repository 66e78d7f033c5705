/*
clock.go - Wall-clock time arithmetic

PURPOSE:
  Parses "HH:MM" wall-clock strings and computes worked-hour durations.
  A ClockTime is a time-of-day on an unnamed nominal day; shifts are
  recurring weekly assignments, so no concrete date is attached.

CONTRACT:
  - DurationHours assumes end > start on the same nominal day. Callers that
    cannot guarantee this must check Window validity first (ValidateWindow).
  - BreakDuration is a duration to subtract (hours + minutes/60), not an
    interval. It is deliberately NOT validated against the shift window;
    the result is floored at zero instead. The assignment dialog upstream
    separately rejects breaks outside the window.

SEE ALSO:
  - night.go: Hour-granularity night-window counting
  - overlap.go: Minute-granularity interval overlap
*/
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// CLOCK TIME - "HH:MM" time of day
// =============================================================================

type ClockTime struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// ParseClock parses an "HH:MM" string. The field name is carried into the
// error so callers can surface which input was malformed.
func ParseClock(field, s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return ClockTime{}, &ParseError{Field: field, Value: s, Reason: "want HH:MM"}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, &ParseError{Field: field, Value: s, Reason: "hour out of range"}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, &ParseError{Field: field, Value: s, Reason: "minute out of range"}
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// MustClock is a test/preset helper; it panics on malformed input.
func MustClock(s string) ClockTime {
	ct, err := ParseClock("time", s)
	if err != nil {
		panic(err)
	}
	return ct
}

// Minutes returns minutes since midnight.
func (ct ClockTime) Minutes() int { return ct.Hour*60 + ct.Minute }

func (ct ClockTime) Before(other ClockTime) bool { return ct.Minutes() < other.Minutes() }
func (ct ClockTime) After(other ClockTime) bool  { return ct.Minutes() > other.Minutes() }
func (ct ClockTime) Equal(other ClockTime) bool  { return ct.Minutes() == other.Minutes() }
func (ct ClockTime) IsZero() bool                { return ct.Hour == 0 && ct.Minute == 0 }

func (ct ClockTime) String() string { return fmt.Sprintf("%02d:%02d", ct.Hour, ct.Minute) }

// =============================================================================
// DURATION - Elapsed shift hours minus break allowance
// =============================================================================

// ValidateWindow checks the start < end invariant for a shift window.
// Midnight-crossing shifts are structurally invalid in this model.
func ValidateWindow(id ShiftID, start, end ClockTime) error {
	if !start.Before(end) {
		return &ShiftWindowError{ShiftID: id, Start: start, End: end}
	}
	return nil
}

// DurationHours computes (end - start) in hours minus the break allowance,
// floored at zero. The caller guarantees end > start; a zero break means no
// subtraction. The break is subtracted as a plain duration, whatever the
// window; results never go negative.
func DurationHours(start, end, breakDuration ClockTime) Amount {
	worked := end.Minutes() - start.Minutes()
	if !breakDuration.IsZero() {
		worked -= breakDuration.Minutes()
	}
	if worked < 0 {
		worked = 0
	}
	return HoursFromMinutes(worked)
}

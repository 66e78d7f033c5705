/*
errors.go - Centralized error types for the payroll engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The engine distinguishes exactly two failure classes:

  1. Parse errors - malformed time strings or weekday identifiers. Fatal to
     the single call, surfaced with the offending field and value named.
  2. Structural errors - a shift window the model cannot represent
     (end before start, i.e. a midnight-crossing shift).

  Policy violations (overlap conflicts, legal-limit excess) are NEVER errors;
  they are structured results the caller interprets. Degenerate input (zero
  shifts, empty holiday list) yields zero-valued results, not errors.

USAGE:
  if errors.Is(err, engine.ErrInvalidShiftWindow) { ... }

  var perr *engine.ParseError
  if errors.As(err, &perr) {
      log.Printf("bad %s: %q", perr.Field, perr.Value)
  }
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMalformedTime is returned when an HH:MM string cannot be parsed.
	ErrMalformedTime = errors.New("malformed time")

	// ErrInvalidShiftWindow is returned when a shift's end does not come
	// after its start. The engine does not support shifts crossing midnight.
	ErrInvalidShiftWindow = errors.New("invalid shift window: end must be after start")

	// ErrInvalidRules is returned when a LaborRules table fails validation.
	ErrInvalidRules = errors.New("invalid labor rules")

	// ErrEmployeeNotFound is returned by stores when an employee is unknown.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrShiftNotFound is returned by stores when a shift is unknown.
	ErrShiftNotFound = errors.New("shift not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ParseError names the field and value that failed to parse.
type ParseError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot parse %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("cannot parse %s %q", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error { return ErrMalformedTime }

// ShiftWindowError reports a shift whose window the model cannot represent.
type ShiftWindowError struct {
	ShiftID ShiftID
	Start   ClockTime
	End     ClockTime
}

func (e *ShiftWindowError) Error() string {
	return fmt.Sprintf("shift %s: window %s-%s is invalid, end must be after start",
		e.ShiftID, e.Start, e.End)
}

func (e *ShiftWindowError) Unwrap() error { return ErrInvalidShiftWindow }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMalformedTime) ||
		errors.Is(err, ErrInvalidShiftWindow) ||
		errors.Is(err, ErrInvalidRules)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrShiftNotFound)
}

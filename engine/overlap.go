/*
overlap.go - Shift time-conflict detection

PURPOSE:
  Given a candidate shift, finds the employee's already-assigned shifts it
  collides with. Runs at shift-creation time against the raw shift records,
  independently of the payroll path.

SEMANTICS:
  - Only shifts of the same employee sharing at least one recurring weekday
    are considered.
  - Intervals are half-open in minutes since midnight:
    newStart < existingEnd AND newEnd > existingStart.
    Back-to-back shifts (newStart == existingEnd) do not conflict.
  - Never returns an error; the result is a value the caller interprets
    (block submission, list the conflicting shifts, etc.).
*/
package engine

// ShiftCandidate is the window being validated before it becomes a
// ShiftSchedule.
type ShiftCandidate struct {
	Start ClockTime
	End   ClockTime
	Days  DaySet
}

// CheckOverlap reports which of the employee's existing shifts conflict with
// the candidate window. Shifts belonging to other employees or sharing no
// weekday with the candidate are ignored.
func CheckOverlap(candidate ShiftCandidate, existing []ShiftSchedule, employeeID EmployeeID) OverlapResult {
	result := OverlapResult{}

	newStart := candidate.Start.Minutes()
	newEnd := candidate.End.Minutes()

	for _, shift := range existing {
		if shift.EmployeeID != employeeID {
			continue
		}
		if !shift.DaysOfWeek.Intersects(candidate.Days) {
			continue
		}
		if newStart < shift.EndTime.Minutes() && newEnd > shift.StartTime.Minutes() {
			result.Conflicts = append(result.Conflicts, shift)
		}
	}

	result.HasConflict = len(result.Conflicts) > 0
	return result
}

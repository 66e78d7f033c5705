/*
alerts.go - Legal-compliance alert generation

PURPOSE:
  Scans aggregated payroll results across employees and emits structured
  findings for legal-limit violations. Alerts are transient values; the
  surrounding application decides how to surface them.

ALERT RULES (per employee, after computing that employee's breakdown):
  - WeeklyHours over the weekly ceiling  -> warning, message carries the value
  - Any per-shift hours over the daily limit -> error
  - NightHours over the night-alert threshold -> info

ORDERING:
  Output order is deterministic: employees are visited in the order they
  first appear in the input slice. Grouping never goes through a Go map's
  iteration order.
*/
package engine

import (
	"fmt"
)

// GenerateAlerts computes each employee's breakdown from the flat shift
// collection and reports legal-limit findings. Employees are processed in
// first-appearance order so output is stable and testable.
func (c *Calculator) GenerateAlerts(shifts []ShiftSchedule, holidays []Holiday, period Period) ([]ComplianceAlert, error) {
	var order []EmployeeID
	grouped := make(map[EmployeeID][]ShiftSchedule)
	for _, shift := range shifts {
		if _, seen := grouped[shift.EmployeeID]; !seen {
			order = append(order, shift.EmployeeID)
		}
		grouped[shift.EmployeeID] = append(grouped[shift.EmployeeID], shift)
	}

	var alerts []ComplianceAlert
	for _, employeeID := range order {
		bd, err := c.ComputePayroll(grouped[employeeID], holidays, period)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, c.alertsFor(bd)...)
	}
	return alerts, nil
}

// AlertsForBreakdown reports the findings for one already-computed breakdown.
func (c *Calculator) AlertsForBreakdown(bd PayrollBreakdown) []ComplianceAlert {
	return c.alertsFor(bd)
}

func (c *Calculator) alertsFor(bd PayrollBreakdown) []ComplianceAlert {
	var alerts []ComplianceAlert

	maxWeekly := Amount{Value: c.rules.MaxWeeklyHours, Unit: UnitHours}
	if bd.WeeklyHours.GreaterThan(maxWeekly) {
		alerts = append(alerts, ComplianceAlert{
			Severity:   SeverityWarning,
			EmployeeID: bd.EmployeeID,
			Message: fmt.Sprintf("weekly hours %s exceed the legal maximum of %s",
				bd.WeeklyHours.Value, c.rules.MaxWeeklyHours),
		})
	}

	if bd.DailyHoursExceeded.IsPositive() {
		alerts = append(alerts, ComplianceAlert{
			Severity:   SeverityError,
			EmployeeID: bd.EmployeeID,
			Message: fmt.Sprintf("daily hours exceed the legal shift maximum of %s by %s in total",
				c.rules.MaxDailyHours, bd.DailyHoursExceeded.Value),
		})
	}

	if bd.NightHours.GreaterThan(Amount{Value: c.rules.NightHoursAlertThreshold, Unit: UnitHours}) {
		alerts = append(alerts, ComplianceAlert{
			Severity:   SeverityInfo,
			EmployeeID: bd.EmployeeID,
			Message: fmt.Sprintf("night hours %s exceed %s; review rotation for recovery time",
				bd.NightHours.Value, c.rules.NightHoursAlertThreshold),
		})
	}

	return alerts
}

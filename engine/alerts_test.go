package engine_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/turno/shift-engine/engine"
)

func weekOfShifts(t *testing.T, employeeID string, days ...time.Weekday) []engine.ShiftSchedule {
	t.Helper()
	var shifts []engine.ShiftSchedule
	for i, d := range days {
		s := shift(t, fmt.Sprintf("%s-s%d", employeeID, i), "08:00", "16:00", "", d)
		s.EmployeeID = engine.EmployeeID(employeeID)
		shifts = append(shifts, s)
	}
	return shifts
}

func TestGenerateAlerts_WithinLimits_Silent(t *testing.T) {
	// GIVEN: Five 8-hour weekday shifts, 40 hours total
	// WHEN: Scanning for compliance findings
	// THEN: No alerts

	calc := newCalculator(t)
	shifts := weekOfShifts(t, "emp-1",
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)

	alerts, err := calc.GenerateAlerts(shifts, nil, engine.Period{})
	if err != nil {
		t.Fatalf("GenerateAlerts: %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %+v", alerts)
	}
}

func TestGenerateAlerts_WeeklyExcess_WarnsWithMeasuredValue(t *testing.T) {
	// GIVEN: Six 8-hour shifts, 48 hours against a 44-hour ceiling
	// WHEN: Scanning
	// THEN: A warning naming the measured 48 hours

	calc := newCalculator(t)
	shifts := weekOfShifts(t, "emp-1",
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday)

	alerts, err := calc.GenerateAlerts(shifts, nil, engine.Period{})
	if err != nil {
		t.Fatalf("GenerateAlerts: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %+v", alerts)
	}
	a := alerts[0]
	if a.Severity != engine.SeverityWarning {
		t.Errorf("expected warning severity, got %s", a.Severity)
	}
	if a.EmployeeID != "emp-1" {
		t.Errorf("expected emp-1, got %s", a.EmployeeID)
	}
	if !strings.Contains(a.Message, "48") || !strings.Contains(a.Message, "44") {
		t.Errorf("message should carry measured and limit values: %q", a.Message)
	}
}

func TestGenerateAlerts_DailyExcess_IsAnError(t *testing.T) {
	calc := newCalculator(t)
	shifts := []engine.ShiftSchedule{shift(t, "long", "06:00", "18:00", "", time.Monday)} // 12h

	alerts, err := calc.GenerateAlerts(shifts, nil, engine.Period{})
	if err != nil {
		t.Fatalf("GenerateAlerts: %v", err)
	}
	if len(alerts) != 1 || alerts[0].Severity != engine.SeverityError {
		t.Fatalf("expected one error alert, got %+v", alerts)
	}
	if !strings.Contains(alerts[0].Message, "4") {
		t.Errorf("message should carry the 4-hour excess: %q", alerts[0].Message)
	}
}

func TestGenerateAlerts_NightAccumulation_IsInformational(t *testing.T) {
	// GIVEN: Five early-morning shifts, each with 7 of its 8 hours inside the
	//        night window, 35 night hours against a threshold of 20
	// WHEN: Scanning
	// THEN: An info alert; the hours themselves are legal, so nothing stronger

	calc := newCalculator(t)
	var shifts []engine.ShiftSchedule
	days := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	for i, d := range days {
		shifts = append(shifts, shift(t, fmt.Sprintf("n%d", i), "00:00", "08:00", "", d))
	}

	alerts, err := calc.GenerateAlerts(shifts, nil, engine.Period{})
	if err != nil {
		t.Fatalf("GenerateAlerts: %v", err)
	}

	var info int
	for _, a := range alerts {
		if a.Severity == engine.SeverityInfo {
			info++
			if !strings.Contains(a.Message, "night") {
				t.Errorf("info alert should mention night hours: %q", a.Message)
			}
		}
	}
	if info != 1 {
		t.Fatalf("expected one info alert, got %+v", alerts)
	}
}

func TestGenerateAlerts_FirstAppearanceOrderAcrossEmployees(t *testing.T) {
	// GIVEN: Interleaved shifts for two over-limit employees
	// WHEN: Scanning
	// THEN: Alerts group by employee in the order they first appear

	calc := newCalculator(t)
	a := weekOfShifts(t, "emp-a",
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday)
	b := weekOfShifts(t, "emp-b",
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday)

	var interleaved []engine.ShiftSchedule
	for i := range a {
		interleaved = append(interleaved, a[i], b[i])
	}

	alerts, err := calc.GenerateAlerts(interleaved, nil, engine.Period{})
	if err != nil {
		t.Fatalf("GenerateAlerts: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected one warning per employee, got %+v", alerts)
	}
	if alerts[0].EmployeeID != "emp-a" || alerts[1].EmployeeID != "emp-b" {
		t.Errorf("expected emp-a before emp-b, got %s then %s",
			alerts[0].EmployeeID, alerts[1].EmployeeID)
	}
}

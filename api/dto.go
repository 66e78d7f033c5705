/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Request DTOs carry go-playground/validator struct tags; handlers run the
  validator before touching domain logic. Time strings stay strings at this
  boundary - the engine's own parser is the source of truth for HH:MM and
  weekday identifiers, and its ParseError already names the bad field.

SEE ALSO:
  - handlers.go: Uses these types
  - engine/types.go: Domain model these map onto
*/
package api

import (
	"strings"

	"github.com/turno/shift-engine/engine"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	HourlyRate string `json:"hourly_rate,omitempty"`
}

// CreateEmployeeRequest is the request to create an employee.
type CreateEmployeeRequest struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	HourlyRate string `json:"hourly_rate,omitempty"`
}

// ShiftDTO represents a recurring shift in API responses.
type ShiftDTO struct {
	ID                 string   `json:"id"`
	EmployeeID         string   `json:"employee_id"`
	StartTime          string   `json:"start_time"`
	EndTime            string   `json:"end_time"`
	BreakDuration      string   `json:"break_duration"`
	DaysOfWeek         []string `json:"days_of_week"`
	HourlyRate         string   `json:"hourly_rate"`
	OvertimeAuthorized bool     `json:"overtime_authorized"`
}

// CreateShiftRequest is the request to create or replace a shift.
type CreateShiftRequest struct {
	ID                 string   `json:"id,omitempty"`
	EmployeeID         string   `json:"employee_id" validate:"required"`
	StartTime          string   `json:"start_time" validate:"required"`
	EndTime            string   `json:"end_time" validate:"required"`
	BreakDuration      string   `json:"break_duration,omitempty"`
	DaysOfWeek         []string `json:"days_of_week" validate:"required,min=1"`
	HourlyRate         string   `json:"hourly_rate,omitempty"`
	OvertimeAuthorized bool     `json:"overtime_authorized"`
}

// OverlapDTO mirrors engine.OverlapResult.
type OverlapDTO struct {
	HasConflict bool       `json:"has_conflict"`
	Conflicts   []ShiftDTO `json:"conflicts"`
}

// CheckOverlapRequest asks whether a candidate window conflicts.
type CheckOverlapRequest struct {
	EmployeeID string   `json:"employee_id" validate:"required"`
	StartTime  string   `json:"start_time" validate:"required"`
	EndTime    string   `json:"end_time" validate:"required"`
	DaysOfWeek []string `json:"days_of_week" validate:"required,min=1"`
}

// PayrollDTO represents a computed breakdown. Hour and money fields are
// decimal strings; the currency unit is whatever the hourly rate was in.
type PayrollDTO struct {
	EmployeeID string `json:"employee_id"`
	HourlyRate string `json:"hourly_rate"`

	RegularHours       string `json:"regular_hours"`
	OvertimeHours      string `json:"overtime_hours"`
	NightHours         string `json:"night_hours"`
	SundayHours        string `json:"sunday_hours"`
	HolidayHours       string `json:"holiday_hours"`
	WeeklyHours        string `json:"weekly_hours"`
	DailyHoursExceeded string `json:"daily_hours_exceeded"`

	RegularAmount    string `json:"regular_amount"`
	OvertimeAmount   string `json:"overtime_amount"`
	NightSurcharge   string `json:"night_surcharge"`
	SundaySurcharge  string `json:"sunday_surcharge"`
	HolidaySurcharge string `json:"holiday_surcharge"`
	TotalAmount      string `json:"total_amount"`

	Shifts []ShiftDetailDTO `json:"shifts,omitempty"`
}

// ShiftDetailDTO is the per-shift contribution row.
type ShiftDetailDTO struct {
	ShiftID    string `json:"shift_id"`
	Hours      string `json:"hours"`
	NightHours string `json:"night_hours"`
	Bucket     string `json:"bucket"`
}

// AlertDTO represents a compliance finding.
type AlertDTO struct {
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
}

// HolidayDTO represents a dated holiday.
type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// CreateHolidayRequest adds one dated holiday.
type CreateHolidayRequest struct {
	Date string `json:"date" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// WorkingDaysDTO is the working-day count between two dates.
type WorkingDaysDTO struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	WorkingDays int    `json:"working_days"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// MAPPING HELPERS
// =============================================================================

func shiftToDTO(s engine.ShiftSchedule) ShiftDTO {
	days := make([]string, 0, 7)
	for _, d := range s.DaysOfWeek.List() {
		days = append(days, strings.ToLower(d.String()))
	}
	return ShiftDTO{
		ID:                 string(s.ID),
		EmployeeID:         string(s.EmployeeID),
		StartTime:          s.StartTime.String(),
		EndTime:            s.EndTime.String(),
		BreakDuration:      s.BreakDuration.String(),
		DaysOfWeek:         days,
		HourlyRate:         s.HourlyRate.String(),
		OvertimeAuthorized: s.OvertimeAuthorized,
	}
}

func payrollToDTO(bd engine.PayrollBreakdown) PayrollDTO {
	dto := PayrollDTO{
		EmployeeID: string(bd.EmployeeID),
		HourlyRate: bd.HourlyRate.String(),

		RegularHours:       bd.RegularHours.Value.String(),
		OvertimeHours:      bd.OvertimeHours.Value.String(),
		NightHours:         bd.NightHours.Value.String(),
		SundayHours:        bd.SundayHours.Value.String(),
		HolidayHours:       bd.HolidayHours.Value.String(),
		WeeklyHours:        bd.WeeklyHours.Value.String(),
		DailyHoursExceeded: bd.DailyHoursExceeded.Value.String(),

		RegularAmount:    bd.RegularAmount.Value.String(),
		OvertimeAmount:   bd.OvertimeAmount.Value.String(),
		NightSurcharge:   bd.NightSurcharge.Value.String(),
		SundaySurcharge:  bd.SundaySurcharge.Value.String(),
		HolidaySurcharge: bd.HolidaySurcharge.Value.String(),
		TotalAmount:      bd.TotalAmount.Value.String(),
	}
	for _, d := range bd.Shifts {
		dto.Shifts = append(dto.Shifts, ShiftDetailDTO{
			ShiftID:    string(d.ShiftID),
			Hours:      d.Hours.Value.String(),
			NightHours: d.NightHours.Value.String(),
			Bucket:     string(d.Bucket),
		})
	}
	return dto
}

func alertToDTO(a engine.ComplianceAlert) AlertDTO {
	return AlertDTO{
		Severity:   string(a.Severity),
		Message:    a.Message,
		EmployeeID: string(a.EmployeeID),
	}
}

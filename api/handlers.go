/*
handlers.go - HTTP API handlers for the shift payroll engine

PURPOSE:
  Exposes the payroll/compliance engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  Employees:
    GET    /api/employees                    List all employees
    POST   /api/employees                    Create employee
    GET    /api/employees/{id}               Get employee
    GET    /api/employees/{id}/shifts        List employee shifts
    GET    /api/employees/{id}/payroll       Compute payroll breakdown

  Shifts:
    GET    /api/shifts                       List all shifts
    POST   /api/shifts                       Create shift (rejects conflicts)
    POST   /api/shifts/check                 Dry-run overlap check
    DELETE /api/shifts/{id}                  Delete shift

  Payroll & compliance:
    GET    /api/payroll                      Breakdown per employee, whole agency
    GET    /api/alerts                       Compliance alerts, all employees

  Calendar:
    GET    /api/holidays                     Holiday table for a year
    POST   /api/holidays                     Add a dated holiday
    DELETE /api/holidays/{date}              Remove a dated holiday
    GET    /api/calendar/working-days        Working-day count in a range

REQUEST FLOW:
  1. Decode and validate the DTO (go-playground/validator)
  2. Parse time/weekday strings through the engine's parsers
  3. Call engine logic over store-supplied collections
  4. Serialize response

ERROR HANDLING:
  - 400: validation errors, malformed HH:MM or weekday strings
  - 404: unknown employee/shift
  - 409: overlap conflict on shift creation (body carries the conflicts)
  - 500: store failures

HOLIDAY FALLBACK:
  When the store has no holidays for the requested year, the compiled-in
  Colombian national calendar is used, so a fresh deployment computes
  correct surcharges without seeding.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/turno/shift-engine/colombia"
	"github.com/turno/shift-engine/engine"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store engine.Store
	Calc  *engine.Calculator

	// DefaultHourlyRate prices employees with no rate of their own
	// (typically derived from the monthly minimum wage).
	DefaultHourlyRate decimal.Decimal

	validate *validator.Validate
}

// NewHandler creates a new handler with the given store and calculator.
func NewHandler(store engine.Store, calc *engine.Calculator, defaultRate decimal.Decimal) *Handler {
	return &Handler{
		Store:             store,
		Calc:              calc,
		DefaultHourlyRate: defaultRate,
		validate:          validator.New(),
	}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = EmployeeDTO{ID: string(e.ID), Name: e.Name, HourlyRate: e.HourlyRate}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateEmployee creates an employee record.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if req.HourlyRate != "" {
		if _, err := decimal.NewFromString(req.HourlyRate); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid hourly rate", err)
			return
		}
	}

	e := engine.Employee{ID: engine.EmployeeID(req.ID), Name: req.Name, HourlyRate: req.HourlyRate}
	if err := h.Store.SaveEmployee(r.Context(), e); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, EmployeeDTO{ID: req.ID, Name: req.Name, HourlyRate: req.HourlyRate})
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := engine.EmployeeID(chi.URLParam(r, "id"))
	e, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if engine.IsNotFound(err) {
			status = http.StatusNotFound
		}
		writeError(w, status, "Failed to get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, EmployeeDTO{ID: string(e.ID), Name: e.Name, HourlyRate: e.HourlyRate})
}

// =============================================================================
// SHIFT HANDLERS
// =============================================================================

// ListAllShifts returns every shift.
func (h *Handler) ListAllShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.Store.ListAllShifts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return
	}
	writeJSON(w, http.StatusOK, shiftsToDTOs(shifts))
}

// ListShifts returns an employee's shifts.
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	id := engine.EmployeeID(chi.URLParam(r, "id"))
	shifts, err := h.Store.ListShifts(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return
	}
	writeJSON(w, http.StatusOK, shiftsToDTOs(shifts))
}

// CreateShift validates and persists a shift, rejecting time conflicts with
// the employee's existing shifts.
func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req CreateShiftRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	shift, err := h.shiftFromRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid shift", err)
		return
	}

	existing, err := h.Store.ListShifts(r.Context(), shift.EmployeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load shifts", err)
		return
	}
	// Editing a shift must not conflict with its own previous version.
	filtered := existing[:0:0]
	for _, s := range existing {
		if s.ID != shift.ID {
			filtered = append(filtered, s)
		}
	}

	result := engine.CheckOverlap(engine.ShiftCandidate{
		Start: shift.StartTime,
		End:   shift.EndTime,
		Days:  shift.DaysOfWeek,
	}, filtered, shift.EmployeeID)
	if result.HasConflict {
		writeJSON(w, http.StatusConflict, OverlapDTO{
			HasConflict: true,
			Conflicts:   shiftsToDTOs(result.Conflicts),
		})
		return
	}

	if err := h.Store.SaveShift(r.Context(), shift); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save shift", err)
		return
	}
	writeJSON(w, http.StatusCreated, shiftToDTO(shift))
}

// CheckOverlap dry-runs conflict detection without persisting anything.
func (h *Handler) CheckOverlap(w http.ResponseWriter, r *http.Request) {
	var req CheckOverlapRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	start, err := engine.ParseClock("start_time", req.StartTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start time", err)
		return
	}
	end, err := engine.ParseClock("end_time", req.EndTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end time", err)
		return
	}
	days, err := engine.ParseDays(req.DaysOfWeek)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid days of week", err)
		return
	}

	employeeID := engine.EmployeeID(req.EmployeeID)
	existing, err := h.Store.ListShifts(r.Context(), employeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load shifts", err)
		return
	}

	result := engine.CheckOverlap(engine.ShiftCandidate{Start: start, End: end, Days: days}, existing, employeeID)
	writeJSON(w, http.StatusOK, OverlapDTO{
		HasConflict: result.HasConflict,
		Conflicts:   shiftsToDTOs(result.Conflicts),
	})
}

// DeleteShift removes a shift.
func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := engine.ShiftID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteShift(r.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if engine.IsNotFound(err) {
			status = http.StatusNotFound
		}
		writeError(w, status, "Failed to delete shift", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// PAYROLL & COMPLIANCE HANDLERS
// =============================================================================

// GetPayroll computes the payroll breakdown for one employee over a calendar
// year (?year=2026, defaulting to the current year).
func (h *Handler) GetPayroll(w http.ResponseWriter, r *http.Request) {
	employeeID := engine.EmployeeID(chi.URLParam(r, "id"))

	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	employee, err := h.Store.GetEmployee(r.Context(), employeeID)
	if err != nil && !engine.IsNotFound(err) {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}

	shifts, err := h.Store.ListShifts(r.Context(), employeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load shifts", err)
		return
	}
	h.applyDefaultRate(shifts, employee)

	holidays, err := h.holidaysForYear(r, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}

	breakdown, err := h.Calc.ComputePayroll(shifts, holidays, engine.CalendarYear(year))
	if err != nil {
		status := http.StatusInternalServerError
		if engine.IsClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Failed to compute payroll", err)
		return
	}
	writeJSON(w, http.StatusOK, payrollToDTO(breakdown))
}

// ListPayrolls computes the breakdown for every employee with shifts, in
// first-appearance order (?year=, defaulting to the current year).
func (h *Handler) ListPayrolls(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	shifts, err := h.Store.ListAllShifts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load shifts", err)
		return
	}

	holidays, err := h.holidaysForYear(r, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}

	var order []engine.EmployeeID
	grouped := make(map[engine.EmployeeID][]engine.ShiftSchedule)
	for _, s := range shifts {
		if _, seen := grouped[s.EmployeeID]; !seen {
			order = append(order, s.EmployeeID)
		}
		grouped[s.EmployeeID] = append(grouped[s.EmployeeID], s)
	}

	dtos := make([]PayrollDTO, 0, len(order))
	for _, employeeID := range order {
		group := grouped[employeeID]

		employee, err := h.Store.GetEmployee(r.Context(), employeeID)
		if err != nil && !engine.IsNotFound(err) {
			writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
			return
		}
		h.applyDefaultRate(group, employee)

		breakdown, err := h.Calc.ComputePayroll(group, holidays, engine.CalendarYear(year))
		if err != nil {
			status := http.StatusInternalServerError
			if engine.IsClientError(err) {
				status = http.StatusBadRequest
			}
			writeError(w, status, "Failed to compute payroll", err)
			return
		}
		dtos = append(dtos, payrollToDTO(breakdown))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ListAlerts scans every employee's shifts and returns compliance findings
// in deterministic employee order.
func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	shifts, err := h.Store.ListAllShifts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load shifts", err)
		return
	}

	holidays, err := h.holidaysForYear(r, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}

	alerts, err := h.Calc.GenerateAlerts(shifts, holidays, engine.CalendarYear(year))
	if err != nil {
		status := http.StatusInternalServerError
		if engine.IsClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Failed to generate alerts", err)
		return
	}

	dtos := make([]AlertDTO, len(alerts))
	for i, a := range alerts {
		dtos[i] = alertToDTO(a)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// ListHolidays returns the holiday table for a year.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	holidays, err := h.holidaysForYear(r, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}
	dtos := make([]HolidayDTO, len(holidays))
	for i, hol := range holidays {
		dtos[i] = HolidayDTO{Date: hol.Date.String(), Name: hol.Name}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateHoliday adds one dated holiday.
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	date, err := engine.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}
	holiday := engine.Holiday{Date: date, Name: req.Name}
	if err := h.Store.SaveHoliday(r.Context(), holiday); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save holiday", err)
		return
	}
	writeJSON(w, http.StatusCreated, HolidayDTO{Date: date.String(), Name: req.Name})
}

// DeleteHoliday removes a dated holiday.
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	date, err := engine.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}
	if err := h.Store.DeleteHoliday(r.Context(), date); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete holiday", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetWorkingDays counts working days in [start, end], excluding weekends and
// holidays, endpoints inclusive.
func (h *Handler) GetWorkingDays(w http.ResponseWriter, r *http.Request) {
	start, err := engine.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start date", err)
		return
	}
	end, err := engine.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end date", err)
		return
	}
	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "Invalid range", fmt.Errorf("end %s before start %s", end, start))
		return
	}

	holidays, err := h.holidaysForYear(r, start.Year())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}
	if end.Year() != start.Year() {
		more, err := h.holidaysForYear(r, end.Year())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
			return
		}
		holidays = append(holidays, more...)
	}

	cal := engine.NewCalendarFromHolidays(start.Year(), holidays)
	writeJSON(w, http.StatusOK, WorkingDaysDTO{
		Start:       start.String(),
		End:         end.String(),
		WorkingDays: cal.WorkingDaysBetween(start, end),
	})
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return false
	}
	return true
}

// shiftFromRequest parses the wire representation through the engine's own
// parsers and enforces the start < end window invariant up front.
func (h *Handler) shiftFromRequest(req CreateShiftRequest) (engine.ShiftSchedule, error) {
	start, err := engine.ParseClock("start_time", req.StartTime)
	if err != nil {
		return engine.ShiftSchedule{}, err
	}
	end, err := engine.ParseClock("end_time", req.EndTime)
	if err != nil {
		return engine.ShiftSchedule{}, err
	}
	brk := engine.ClockTime{}
	if req.BreakDuration != "" {
		brk, err = engine.ParseClock("break_duration", req.BreakDuration)
		if err != nil {
			return engine.ShiftSchedule{}, err
		}
	}
	days, err := engine.ParseDays(req.DaysOfWeek)
	if err != nil {
		return engine.ShiftSchedule{}, err
	}

	// The generated ID carries the day set: the same employee may hold the
	// same window on different weekdays, and those must stay distinct rows.
	id := engine.ShiftID(req.ID)
	if id == "" {
		id = engine.ShiftID(fmt.Sprintf("shift-%s-%s-%s-%s", req.EmployeeID, start, end, days))
	}
	if err := engine.ValidateWindow(id, start, end); err != nil {
		return engine.ShiftSchedule{}, err
	}

	rate := h.DefaultHourlyRate
	if req.HourlyRate != "" {
		rate, err = decimal.NewFromString(req.HourlyRate)
		if err != nil {
			return engine.ShiftSchedule{}, &engine.ParseError{Field: "hourly_rate", Value: req.HourlyRate}
		}
	}

	return engine.ShiftSchedule{
		ID:                 id,
		EmployeeID:         engine.EmployeeID(req.EmployeeID),
		StartTime:          start,
		EndTime:            end,
		BreakDuration:      brk,
		DaysOfWeek:         days,
		HourlyRate:         rate,
		OvertimeAuthorized: req.OvertimeAuthorized,
	}, nil
}

// applyDefaultRate fills shift rates from the employee record, then from the
// configured default.
func (h *Handler) applyDefaultRate(shifts []engine.ShiftSchedule, employee engine.Employee) {
	empRate := decimal.Zero
	if employee.HourlyRate != "" {
		empRate = engine.MustParseDecimal(employee.HourlyRate)
	}
	for i := range shifts {
		if !shifts[i].HourlyRate.IsZero() {
			continue
		}
		if !empRate.IsZero() {
			shifts[i].HourlyRate = empRate
		} else {
			shifts[i].HourlyRate = h.DefaultHourlyRate
		}
	}
}

// holidaysForYear loads the stored table, falling back to the compiled-in
// Colombian calendar when the store has nothing for that year.
func (h *Handler) holidaysForYear(r *http.Request, year int) ([]engine.Holiday, error) {
	holidays, err := h.Store.ListHolidays(r.Context(), year)
	if err != nil {
		return nil, err
	}
	if len(holidays) > 0 {
		return holidays, nil
	}
	cal, err := colombia.CalendarFor(year)
	if err != nil {
		// Outside the precomputed span; compute with no holidays rather
		// than failing the whole report.
		return nil, nil
	}
	return cal.Holidays(), nil
}

func (h *Handler) yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	q := r.URL.Query().Get("year")
	if q == "" {
		return engine.Today().Year(), true
	}
	year, err := strconv.Atoi(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return 0, false
	}
	return year, true
}

func shiftsToDTOs(shifts []engine.ShiftSchedule) []ShiftDTO {
	dtos := make([]ShiftDTO, len(shifts))
	for i, s := range shifts {
		dtos[i] = shiftToDTO(s)
	}
	return dtos
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

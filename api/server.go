/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the scheduling frontend

ROUTE GROUPS:
  /api/employees/*      Employee records, shifts, payroll
  /api/shifts/*         Shift CRUD and overlap checks
  /api/alerts           Compliance alert feed
  /api/holidays/*       Holiday table management
  /api/calendar/*       Working-day queries

SECURITY NOTE:
  No authentication middleware; the engine sits behind the agency platform,
  which owns auth.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Employee routes
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Get("/{id}/shifts", h.ListShifts)
			r.Get("/{id}/payroll", h.GetPayroll)
		})

		// Shift routes
		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.ListAllShifts)
			r.Post("/", h.CreateShift)
			r.Post("/check", h.CheckOverlap)
			r.Delete("/{id}", h.DeleteShift)
		})

		// Payroll and compliance routes
		r.Get("/payroll", h.ListPayrolls)
		r.Get("/alerts", h.ListAlerts)

		// Holiday routes
		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.ListHolidays)
			r.Post("/", h.CreateHoliday)
			r.Delete("/{date}", h.DeleteHoliday)
		})

		// Calendar routes
		r.Get("/calendar/working-days", h.GetWorkingDays)
	})

	return r
}

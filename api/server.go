/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the site tablet/phone UI

ROUTE GROUPS:
  /api/workers/*          Roster management + pass-expiry check
  /api/projects/*         Project selection list
  /api/active_clockins    Presence set (GET, legacy table POST)
  /api/clockin|clockout   Per-record shift transitions
  /api/attendance         Ledger reads + legacy append-only POST
  /api/payroll            Monthly pay summaries
  /api/reminders/*        Reminders and dismissals
  /api/holidays/*         Public holiday calendar

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

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
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		// Roster routes
		r.Route("/workers", func(r chi.Router) {
			r.Get("/", h.ListWorkers)
			r.Post("/", h.SaveWorker)
			r.Get("/expiring", h.ListExpiringWorkers)
			r.Get("/{id}", h.GetWorker)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ListProjects)
			r.Post("/", h.SaveProject)
		})

		// Presence set. POST is the legacy whole-table contract kept
		// for sheet-style clients.
		r.Route("/active_clockins", func(r chi.Router) {
			r.Get("/", h.ListActiveClockIns)
			r.Post("/", h.ReplaceActiveClockIns)
		})

		// Per-record shift transitions
		r.Post("/clockin", h.ClockIn)
		r.Post("/clockout", h.ClockOut)
		r.Get("/clockout/preview", h.PreviewClockOut)

		// Ledger. POST is the legacy full-array contract: append-only
		// union, never destructive.
		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.ListAttendance)
			r.Post("/", h.AppendAttendance)
		})

		r.Get("/payroll", h.Payroll)

		// Reminder routes
		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", h.ListReminders)
			r.Post("/", h.CreateReminder)
			r.Post("/{id}/dismiss", h.DismissReminder)
		})

		// Holiday routes
		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.ListHolidays)
			r.Post("/", h.CreateHoliday)
			r.Delete("/{id}", h.DeleteHoliday)
		})
	})

	return r
}

/*
handlers.go - HTTP API handlers for the attendance engine

PURPOSE:
  Exposes the attendance engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Health:
    GET    /api/health                     Liveness probe

  Workers:
    GET    /api/workers                    List roster
    POST   /api/workers                    Create/update worker
    GET    /api/workers/expiring           Work passes inside warning window
    GET    /api/workers/{id}               Get worker

  Projects:
    GET    /api/projects                   Selection list
    POST   /api/projects                   Create/update project

  Presence and transitions:
    GET    /api/active_clockins            Active presence set
    POST   /api/active_clockins            Legacy table-replace (compat)
    POST   /api/clockin                    Start a shift
    POST   /api/clockout                   Finalize a shift
    GET    /api/clockout/preview           Derived split, no commit

  Ledger and payroll:
    GET    /api/attendance?month=&year=    Monthly ledger read
    POST   /api/attendance                 Legacy full-array append (compat)
    GET    /api/payroll?month=&year=       Monthly pay summaries

  Reminders:
    GET    /api/reminders                  List (optionally ?viewer_id=&due=true)
    POST   /api/reminders                  Create
    POST   /api/reminders/{id}/dismiss     Acknowledge for a viewer

  Holidays:
    GET    /api/holidays?year=             List
    POST   /api/holidays                   Add
    DELETE /api/holidays/{id}              Remove

COMPATIBILITY ADAPTERS:
  The original sheet-style clients POST whole tables. Those endpoints
  survive, but as adapters over the per-record model:
  - POST /api/active_clockins diffs against current rows and logs any
    row it drops.
  - POST /api/attendance is an append-only union: new ids are appended,
    known ids ignored, nothing is ever deleted.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 500: Internal errors
  A clock-out with no matching clock-in is NOT an error: it returns
  200 with status "noop", because retrying a double-tapped button must
  stay harmless.

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - attendance/clock.go: The state machine these handlers drive
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sitecrew/attendance-engine/attendance"
	"github.com/sitecrew/attendance-engine/calendar"
	"github.com/sitecrew/attendance-engine/payroll"
	"github.com/sitecrew/attendance-engine/reminder"
	"github.com/sitecrew/attendance-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   *sqlite.Store
	Tracker *attendance.Tracker

	// now is injectable so handler tests can pin the clock.
	now func() time.Time
}

// NewHandler creates a new handler over the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:   store,
		Tracker: attendance.NewTracker(store, store),
		now:     time.Now,
	}
}

// WithClock overrides the handler's clock. For tests.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "attendance engine running",
	})
}

// =============================================================================
// WORKER HANDLERS
// =============================================================================

// ListWorkers returns the roster ordered by name.
func (h *Handler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.Store.ListWorkers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list workers", err)
		return
	}

	dtos := make([]WorkerDTO, len(workers))
	for i, wk := range workers {
		dtos[i] = toWorkerDTO(wk)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetWorker returns a single worker.
func (h *Handler) GetWorker(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	wk, err := h.Store.GetWorker(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get worker", err)
		return
	}
	if wk == nil {
		writeError(w, http.StatusNotFound, "Worker not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toWorkerDTO(*wk))
}

// SaveWorker creates or updates a worker.
func (h *Handler) SaveWorker(w http.ResponseWriter, r *http.Request) {
	var req SaveWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	wk := attendance.Worker{
		ID:           req.ID,
		Name:         req.Name,
		RateType:     attendance.RateType(req.RateType),
		Rate:         req.Rate,
		Levy:         req.Levy,
		Nationality:  req.Nationality,
		ShowInRoster: true,
		EmployerCPF:  req.EmployerCPF,
	}
	if wk.ID == "" {
		wk.ID = uuid.NewString()
	}
	if req.ShowInRoster != nil {
		wk.ShowInRoster = *req.ShowInRoster
	}
	if req.PassExpiry != nil && *req.PassExpiry != "" {
		d, err := time.Parse("2006-01-02", *req.PassExpiry)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid pass_expiry, want YYYY-MM-DD", err)
			return
		}
		wk.PassExpiry = &d
	}

	if err := h.Store.SaveWorker(r.Context(), wk); err != nil {
		if errors.Is(err, attendance.ErrInvalidWorker) {
			writeError(w, http.StatusBadRequest, "Invalid worker", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save worker", err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkerDTO(wk))
}

// ListExpiringWorkers returns workers whose pass expiry is inside the
// warning window, with days remaining.
func (h *Handler) ListExpiringWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.Store.ListWorkers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list workers", err)
		return
	}

	now := h.now()
	dtos := []ExpiringWorkerDTO{}
	for _, wk := range workers {
		if wk.PassExpiry == nil || !calendar.IsExpiringSoon(now, *wk.PassExpiry) {
			continue
		}
		dtos = append(dtos, ExpiringWorkerDTO{
			WorkerDTO: toWorkerDTO(wk),
			DaysLeft:  calendar.DaysLeft(now, *wk.PassExpiry),
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// PROJECT HANDLERS
// =============================================================================

// ListProjects returns the project selection list.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.ListProjects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list projects", err)
		return
	}

	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ProjectDTO{ID: p.ID, Name: p.Name, Client: p.Client, Active: p.Active}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SaveProject creates or updates a project.
func (h *Handler) SaveProject(w http.ResponseWriter, r *http.Request) {
	var req SaveProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Project name is required", nil)
		return
	}

	p := attendance.Project{ID: req.ID, Name: req.Name, Client: req.Client, Active: true}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if err := h.Store.SaveProject(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save project", err)
		return
	}
	writeJSON(w, http.StatusOK, ProjectDTO{ID: p.ID, Name: p.Name, Client: p.Client, Active: p.Active})
}

// =============================================================================
// PRESENCE + CLOCK TRANSITIONS
// =============================================================================

// ListActiveClockIns returns the active presence set.
func (h *Handler) ListActiveClockIns(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list active clock-ins", err)
		return
	}

	dtos := make([]ActiveClockInDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toActiveClockInDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ReplaceActiveClockIns is the legacy whole-table overwrite endpoint,
// kept for sheet-style clients. The store adapter logs any row the
// replace drops.
func (h *Handler) ReplaceActiveClockIns(w http.ResponseWriter, r *http.Request) {
	var dtos []ActiveClockInDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body, want a JSON array", err)
		return
	}

	entries := make([]attendance.ActiveClockIn, 0, len(dtos))
	for _, d := range dtos {
		if d.WorkerID == "" {
			writeError(w, http.StatusBadRequest, "Entry missing worker_id", nil)
			return
		}
		at, err := time.Parse(time.RFC3339, d.ClockInAt)
		if err != nil {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("Invalid clock_in_at for worker %s", d.WorkerID), err)
			return
		}
		entries = append(entries, attendance.ActiveClockIn{
			WorkerID:  d.WorkerID,
			ClockInAt: at,
			ProjectID: d.ProjectID,
			Overnight: d.Overnight,
		})
	}

	if err := h.Store.ReplacePresence(r.Context(), entries); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to replace active clock-ins", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": len(entries)})
}

// ClockIn starts a shift for one worker. A second clock-in for the same
// worker replaces the first (forgot-to-clock-out recovery).
func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req ClockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.WorkerID == "" {
		writeError(w, http.StatusBadRequest, "worker_id is required", nil)
		return
	}

	at := h.now()
	if req.At != "" {
		parsed, err := time.Parse(time.RFC3339, req.At)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid at timestamp, want RFC3339", err)
			return
		}
		at = parsed
	}

	err := h.Tracker.ClockIn(r.Context(), req.WorkerID, req.ProjectID, req.Overnight, at)
	if err != nil {
		if attendance.IsClientError(err) {
			writeError(w, http.StatusBadRequest, "Cannot clock in", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to clock in", err)
		return
	}

	writeJSON(w, http.StatusOK, toActiveClockInDTO(attendance.ActiveClockIn{
		WorkerID:  req.WorkerID,
		ClockInAt: at,
		ProjectID: req.ProjectID,
		Overnight: req.Overnight,
	}))
}

// ClockOut finalizes a shift: derives the hour split, applies any
// supervisor overrides, writes the ledger record, and clears presence.
func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req ClockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.WorkerID == "" {
		writeError(w, http.StatusBadRequest, "worker_id is required", nil)
		return
	}

	at := h.now()
	if req.At != "" {
		parsed, err := time.Parse(time.RFC3339, req.At)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid at timestamp, want RFC3339", err)
			return
		}
		at = parsed
	}

	var ov *attendance.Override
	if req.NormalHours != nil || req.OvertimeHours != nil || req.MealAllowance != nil ||
		req.TransportClaim != nil || req.Remarks != "" {
		ov = &attendance.Override{
			NormalHours:    req.NormalHours,
			OvertimeHours:  req.OvertimeHours,
			MealAllowance:  req.MealAllowance,
			TransportClaim: req.TransportClaim,
			Remarks:        req.Remarks,
		}
	}

	rec, err := h.Tracker.ClockOut(r.Context(), req.WorkerID, at, ov)
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			// Double-tap or stale client: harmless no-op, not a 4xx.
			writeJSON(w, http.StatusOK, ClockOutResponse{Status: "noop"})
			return
		}
		if attendance.IsClientError(err) {
			writeError(w, http.StatusBadRequest, "Invalid clock-out", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to clock out", err)
		return
	}

	dto := toAttendanceRecordDTO(*rec)
	writeJSON(w, http.StatusOK, ClockOutResponse{Status: "recorded", Record: &dto})
}

// PreviewClockOut returns the derived hour split for the confirmation
// step without committing anything.
func (h *Handler) PreviewClockOut(w http.ResponseWriter, r *http.Request) {
	workerID := r.URL.Query().Get("worker_id")
	if workerID == "" {
		writeError(w, http.StatusBadRequest, "worker_id query parameter is required", nil)
		return
	}

	derived, entry, err := h.Tracker.Preview(r.Context(), workerID, h.now())
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			writeError(w, http.StatusNotFound, "Worker is not clocked in", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to preview clock-out", err)
		return
	}

	writeJSON(w, http.StatusOK, ClockOutPreviewDTO{
		WorkerID:      entry.WorkerID,
		ClockInAt:     entry.ClockInAt.UTC().Format(time.RFC3339),
		ProjectID:     entry.ProjectID,
		RawHours:      derived.RawHours,
		NormalHours:   derived.NormalHours,
		OvertimeHours: derived.OvertimeHours,
		MealAllowance: derived.MealAllowance,
	})
}

// =============================================================================
// ATTENDANCE LEDGER
// =============================================================================

// ListAttendance returns the ledger for a month. Defaults to the
// current month when no query parameters are given.
func (h *Handler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.yearMonthParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month/year", err)
		return
	}

	records, err := h.Store.ListMonth(r.Context(), year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list attendance", err)
		return
	}

	dtos := make([]AttendanceRecordDTO, len(records))
	for i, rec := range records {
		dtos[i] = toAttendanceRecordDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// AppendAttendance is the legacy full-array endpoint. The ledger is
// append-only, so this is a union: records with new ids are appended,
// records with known ids are ignored, nothing is ever deleted.
func (h *Handler) AppendAttendance(w http.ResponseWriter, r *http.Request) {
	var dtos []AttendanceRecordDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body, want a JSON array", err)
		return
	}

	resp := PostAttendanceResponse{}
	for _, d := range dtos {
		date, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("Invalid date %q, want YYYY-MM-DD", d.Date), err)
			return
		}

		rec := attendance.AttendanceRecord{
			ID:             d.ID,
			WorkerID:       d.WorkerID,
			Date:           date,
			NormalHours:    d.NormalHours,
			OvertimeHours:  d.OvertimeHours,
			ProjectID:      d.ProjectID,
			MealAllowance:  d.MealAllowance,
			TransportClaim: d.TransportClaim,
			Remarks:        d.Remarks,
		}
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}

		err = h.Store.Append(r.Context(), rec)
		switch {
		case err == nil:
			resp.Appended++
		case errors.Is(err, attendance.ErrDuplicateRecord):
			resp.Ignored++
		case errors.Is(err, attendance.ErrInvalidRecord):
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid record %s", rec.ID), err)
			return
		default:
			writeError(w, http.StatusInternalServerError, "Failed to append attendance", err)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// PAYROLL
// =============================================================================

// Payroll returns per-worker monthly pay summaries.
func (h *Handler) Payroll(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.yearMonthParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month/year", err)
		return
	}

	workers, err := h.Store.ListWorkers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list workers", err)
		return
	}
	records, err := h.Store.ListMonth(r.Context(), year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list attendance", err)
		return
	}

	summaries := payroll.ComputeMonthlySummary(workers, records, year, month, h.Store)
	dtos := make([]PayrollSummaryDTO, len(summaries))
	for i, s := range summaries {
		dtos[i] = toPayrollSummaryDTO(s)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// REMINDERS
// =============================================================================

// ListReminders returns reminders. With ?viewer_id= it filters to the
// viewer's visible set; adding &due=true narrows to due-and-undismissed.
// &first=true surfaces only the first due reminder, leaving the rest
// queued until it is dismissed - the polling contract the site UI uses
// so supervisors see one alert at a time.
func (h *Handler) ListReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.Store.ListReminders(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list reminders", err)
		return
	}

	viewerID := r.URL.Query().Get("viewer_id")
	dueOnly := r.URL.Query().Get("due") == "true"
	firstOnly := r.URL.Query().Get("first") == "true"
	now := h.now()

	if firstOnly {
		dtos := []ReminderDTO{}
		if f := reminder.FirstDue(reminders, viewerID, now); f != nil {
			dtos = append(dtos, toReminderDTO(*f))
		}
		writeJSON(w, http.StatusOK, dtos)
		return
	}

	dtos := []ReminderDTO{}
	for _, rem := range reminders {
		if viewerID != "" && !rem.VisibleTo(viewerID) {
			continue
		}
		if dueOnly && !rem.DueFor(viewerID, now) {
			continue
		}
		dtos = append(dtos, toReminderDTO(rem))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateReminder stores a new reminder.
func (h *Handler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	remindAt, err := time.Parse(time.RFC3339, req.RemindAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid remind_at, want RFC3339", err)
		return
	}

	rem := reminder.Reminder{
		ID:            uuid.NewString(),
		CreatorID:     req.CreatorID,
		Scope:         reminder.Scope(req.Scope),
		TargetUserIDs: req.TargetUserIDs,
		RemindAt:      remindAt,
		Message:       req.Message,
	}

	if err := h.Store.SaveReminder(r.Context(), rem); err != nil {
		if errors.Is(err, reminder.ErrInvalidScope) {
			writeError(w, http.StatusBadRequest, "Invalid reminder scope", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save reminder", err)
		return
	}
	writeJSON(w, http.StatusOK, toReminderDTO(rem))
}

// DismissReminder acknowledges a reminder for one viewer. SELF scope
// dismisses globally; ALL/SPECIFIC record the viewer so everyone else
// still sees it.
func (h *Handler) DismissReminder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req DismissReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ViewerID == "" {
		writeError(w, http.StatusBadRequest, "viewer_id is required", nil)
		return
	}

	rem, err := h.Store.GetReminder(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get reminder", err)
		return
	}
	if rem == nil {
		writeError(w, http.StatusNotFound, "Reminder not found", nil)
		return
	}

	updated := rem.Dismiss(req.ViewerID)
	if err := h.Store.SaveReminder(r.Context(), updated); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save reminder", err)
		return
	}
	writeJSON(w, http.StatusOK, toReminderDTO(updated))
}

// =============================================================================
// HOLIDAYS
// =============================================================================

// ListHolidays returns configured public holidays for a year (defaults
// to the current year).
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := h.now().Year()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = parsed
	}

	holidays := h.Store.Holidays(year)
	dtos := make([]HolidayDTO, len(holidays))
	for i, hd := range holidays {
		dtos[i] = toHolidayDTO(hd)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateHoliday adds a public holiday to the calendar.
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Holiday name is required", nil)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD", err)
		return
	}

	hd := calendar.Holiday{ID: uuid.NewString(), Date: date, Name: req.Name}
	if err := h.Store.SaveHoliday(r.Context(), hd); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save holiday", err)
		return
	}
	writeJSON(w, http.StatusOK, toHolidayDTO(hd))
}

// DeleteHoliday removes a holiday.
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.DeleteHoliday(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete holiday", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// HELPERS
// =============================================================================

// yearMonthParams parses ?month=&year=, defaulting to the current month.
func (h *Handler) yearMonthParams(r *http.Request) (int, time.Month, error) {
	now := h.now()
	year, month := now.Year(), now.Month()

	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year %q", y)
		}
		year = parsed
	}
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, fmt.Errorf("invalid month %q", m)
		}
		month = time.Month(parsed)
	}
	return year, month, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

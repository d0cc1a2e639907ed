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
  - *Response: Complex response wrappers

MONEY AND HOURS:
  Decimals cross the wire as JSON numbers via shopspring/decimal's
  marshaller, so "8.5" stays "8.5" and never picks up float dust.

VALIDATION:
  Validation is done in handlers and the domain layer, not in DTOs.
  DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - attendance/types.go: Domain model these map to
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitecrew/attendance-engine/attendance"
	"github.com/sitecrew/attendance-engine/calendar"
	"github.com/sitecrew/attendance-engine/payroll"
	"github.com/sitecrew/attendance-engine/reminder"
)

// =============================================================================
// WORKERS
// =============================================================================

// WorkerDTO represents a worker in API responses.
type WorkerDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	RateType     string          `json:"rate_type"`
	Rate         decimal.Decimal `json:"rate"`
	Levy         decimal.Decimal `json:"levy"`
	Nationality  string          `json:"nationality,omitempty"`
	PassExpiry   *string         `json:"pass_expiry,omitempty"`
	ShowInRoster bool            `json:"show_in_roster"`
	EmployerCPF  decimal.Decimal `json:"employer_cpf"`
}

// SaveWorkerRequest creates or updates a worker.
type SaveWorkerRequest struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	RateType     string          `json:"rate_type"`
	Rate         decimal.Decimal `json:"rate"`
	Levy         decimal.Decimal `json:"levy"`
	Nationality  string          `json:"nationality"`
	PassExpiry   *string         `json:"pass_expiry"` // "2006-01-02"
	ShowInRoster *bool           `json:"show_in_roster"`
	EmployerCPF  decimal.Decimal `json:"employer_cpf"`
}

// ExpiringWorkerDTO is a roster entry whose work pass is inside the
// warning window.
type ExpiringWorkerDTO struct {
	WorkerDTO
	DaysLeft int `json:"days_left"`
}

func toWorkerDTO(w attendance.Worker) WorkerDTO {
	dto := WorkerDTO{
		ID:           w.ID,
		Name:         w.Name,
		RateType:     string(w.RateType),
		Rate:         w.Rate,
		Levy:         w.Levy,
		Nationality:  w.Nationality,
		ShowInRoster: w.ShowInRoster,
		EmployerCPF:  w.EmployerCPF,
	}
	if w.PassExpiry != nil {
		d := w.PassExpiry.Format("2006-01-02")
		dto.PassExpiry = &d
	}
	return dto
}

// =============================================================================
// PROJECTS
// =============================================================================

type ProjectDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Client string `json:"client,omitempty"`
	Active bool   `json:"active"`
}

type SaveProjectRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Client string `json:"client"`
	Active *bool  `json:"active"`
}

// =============================================================================
// PRESENCE / CLOCK TRANSITIONS
// =============================================================================

// ActiveClockInDTO represents one row of the active presence set.
type ActiveClockInDTO struct {
	WorkerID  string `json:"worker_id"`
	ClockInAt string `json:"clock_in_at"` // RFC3339
	ProjectID string `json:"project_id"`
	Overnight bool   `json:"overnight"`
}

func toActiveClockInDTO(e attendance.ActiveClockIn) ActiveClockInDTO {
	return ActiveClockInDTO{
		WorkerID:  e.WorkerID,
		ClockInAt: e.ClockInAt.UTC().Format(time.RFC3339),
		ProjectID: e.ProjectID,
		Overnight: e.Overnight,
	}
}

// ClockInRequest starts a shift for one worker.
type ClockInRequest struct {
	WorkerID  string `json:"worker_id"`
	ProjectID string `json:"project_id"`
	Overnight bool   `json:"overnight"`
	At        string `json:"at,omitempty"` // RFC3339; defaults to server now
}

// ClockOutRequest finalizes a shift. Nil override fields keep the
// derived values.
type ClockOutRequest struct {
	WorkerID       string           `json:"worker_id"`
	At             string           `json:"at,omitempty"`
	NormalHours    *decimal.Decimal `json:"normal_hours,omitempty"`
	OvertimeHours  *decimal.Decimal `json:"overtime_hours,omitempty"`
	MealAllowance  *bool            `json:"meal_allowance,omitempty"`
	TransportClaim *decimal.Decimal `json:"transport_claim,omitempty"`
	Remarks        string           `json:"remarks,omitempty"`
}

// ClockOutResponse returns the created ledger record, or status "noop"
// when the worker was not clocked in.
type ClockOutResponse struct {
	Status string               `json:"status"` // "recorded" | "noop"
	Record *AttendanceRecordDTO `json:"record,omitempty"`
}

// ClockOutPreviewDTO shows the derived split for the confirmation step
// without committing anything.
type ClockOutPreviewDTO struct {
	WorkerID      string          `json:"worker_id"`
	ClockInAt     string          `json:"clock_in_at"`
	ProjectID     string          `json:"project_id"`
	RawHours      decimal.Decimal `json:"raw_hours"`
	NormalHours   decimal.Decimal `json:"normal_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	MealAllowance bool            `json:"meal_allowance"`
}

// =============================================================================
// ATTENDANCE LEDGER
// =============================================================================

// AttendanceRecordDTO represents one finalized attendance record.
type AttendanceRecordDTO struct {
	ID             string          `json:"id"`
	WorkerID       string          `json:"worker_id"`
	Date           string          `json:"date"` // "2006-01-02"
	NormalHours    decimal.Decimal `json:"normal_hours"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	ProjectID      string          `json:"project_id,omitempty"`
	MealAllowance  bool            `json:"meal_allowance"`
	TransportClaim decimal.Decimal `json:"transport_claim"`
	Remarks        string          `json:"remarks,omitempty"`
}

func toAttendanceRecordDTO(r attendance.AttendanceRecord) AttendanceRecordDTO {
	return AttendanceRecordDTO{
		ID:             r.ID,
		WorkerID:       r.WorkerID,
		Date:           r.Date.Format("2006-01-02"),
		NormalHours:    r.NormalHours,
		OvertimeHours:  r.OvertimeHours,
		ProjectID:      r.ProjectID,
		MealAllowance:  r.MealAllowance,
		TransportClaim: r.TransportClaim,
		Remarks:        r.Remarks,
	}
}

// PostAttendanceResponse reports what the append-only union adapter did
// with a full-array body.
type PostAttendanceResponse struct {
	Appended int `json:"appended"`
	Ignored  int `json:"ignored"` // ids already in the ledger
}

// =============================================================================
// PAYROLL
// =============================================================================

// PayrollSummaryDTO is one worker's monthly pay summary.
type PayrollSummaryDTO struct {
	WorkerID    string          `json:"worker_id"`
	WorkerName  string          `json:"worker_name"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	NormalHours decimal.Decimal `json:"normal_hours"`
	OTHours     decimal.Decimal `json:"ot_hours"`
	OTHours15   decimal.Decimal `json:"ot_hours_1_5x"`
	OTHours20   decimal.Decimal `json:"ot_hours_2_0x"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	NormalPay   decimal.Decimal `json:"normal_pay"`
	OTPay       decimal.Decimal `json:"ot_pay"`
	TotalPay    decimal.Decimal `json:"total_pay"`
}

func toPayrollSummaryDTO(s payroll.Summary) PayrollSummaryDTO {
	return PayrollSummaryDTO{
		WorkerID:    s.WorkerID,
		WorkerName:  s.WorkerName,
		Year:        s.Year,
		Month:       int(s.Month),
		NormalHours: s.NormalHours,
		OTHours:     s.OTHours,
		OTHours15:   s.OTHours15,
		OTHours20:   s.OTHours20,
		HourlyRate:  s.HourlyRate,
		NormalPay:   s.NormalPay,
		OTPay:       s.OTPay,
		TotalPay:    s.TotalPay,
	}
}

// =============================================================================
// REMINDERS
// =============================================================================

type ReminderDTO struct {
	ID            string   `json:"id"`
	CreatorID     string   `json:"creator_id"`
	Scope         string   `json:"scope"`
	TargetUserIDs []string `json:"target_user_ids,omitempty"`
	RemindAt      string   `json:"remind_at"` // RFC3339
	Message       string   `json:"message"`
	Dismissed     bool     `json:"dismissed"`
	DismissedBy   []string `json:"dismissed_by,omitempty"`
}

type CreateReminderRequest struct {
	CreatorID     string   `json:"creator_id"`
	Scope         string   `json:"scope"`
	TargetUserIDs []string `json:"target_user_ids,omitempty"`
	RemindAt      string   `json:"remind_at"`
	Message       string   `json:"message"`
}

type DismissReminderRequest struct {
	ViewerID string `json:"viewer_id"`
}

func toReminderDTO(r reminder.Reminder) ReminderDTO {
	return ReminderDTO{
		ID:            r.ID,
		CreatorID:     r.CreatorID,
		Scope:         string(r.Scope),
		TargetUserIDs: r.TargetUserIDs,
		RemindAt:      r.RemindAt.UTC().Format(time.RFC3339),
		Message:       r.Message,
		Dismissed:     r.Dismissed,
		DismissedBy:   r.DismissedBy,
	}
}

// =============================================================================
// HOLIDAYS
// =============================================================================

type HolidayDTO struct {
	ID   string `json:"id"`
	Date string `json:"date"` // "2006-01-02"
	Name string `json:"name"`
}

type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func toHolidayDTO(h calendar.Holiday) HolidayDTO {
	return HolidayDTO{
		ID:   h.ID,
		Date: h.Date.Format("2006-01-02"),
		Name: h.Name,
	}
}

// =============================================================================
// GENERIC
// =============================================================================

// ErrorResponse is the standard error shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

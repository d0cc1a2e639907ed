/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Clock-in/clock-out round trip through the HTTP surface
- Idle clock-out returning a harmless noop
- Legacy table endpoints behaving as non-destructive adapters
- Payroll, reminder, and pass-expiry endpoints
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitecrew/attendance-engine/attendance"
	"github.com/sitecrew/attendance-engine/calendar"
	"github.com/sitecrew/attendance-engine/store/sqlite"
)

func setup(t *testing.T) (*sqlite.Store, *Handler, http.Handler) {
	t.Helper()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	handler := NewHandler(store)
	return store, handler, NewRouter(handler)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	_, _, router := setup(t)

	rec := doJSON(t, router, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[HealthResponse](t, rec)
	assert.Equal(t, "ok", resp.Status)
}

func TestClockCycle_OverHTTP(t *testing.T) {
	// GIVEN: A clean server and a pinned clock
	_, handler, router := setup(t)

	clockIn := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	handler.WithClock(func() time.Time { return clockIn })

	// WHEN: Clocking a worker in
	rec := doJSON(t, router, http.MethodPost, "/api/clockin", ClockInRequest{
		WorkerID:  "W1",
		ProjectID: "P1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// THEN: The presence set shows the worker
	rec = doJSON(t, router, http.MethodGet, "/api/active_clockins", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	active := decode[[]ActiveClockInDTO](t, rec)
	require.Len(t, active, 1)
	assert.Equal(t, "W1", active[0].WorkerID)
	assert.Equal(t, "P1", active[0].ProjectID)

	// WHEN: Previewing at 17:30 (9.5h elapsed)
	handler.WithClock(func() time.Time { return clockIn.Add(9*time.Hour + 30*time.Minute) })
	rec = doJSON(t, router, http.MethodGet, "/api/clockout/preview?worker_id=W1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	preview := decode[ClockOutPreviewDTO](t, rec)
	assert.True(t, preview.NormalHours.Equal(decimal.NewFromInt(8)), "normal = %s", preview.NormalHours)
	assert.True(t, preview.OvertimeHours.Equal(decimal.RequireFromString("0.5")), "ot = %s", preview.OvertimeHours)

	// WHEN: Confirming the clock-out
	rec = doJSON(t, router, http.MethodPost, "/api/clockout", ClockOutRequest{WorkerID: "W1"})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[ClockOutResponse](t, rec)
	require.Equal(t, "recorded", resp.Status)
	require.NotNil(t, resp.Record)
	assert.Equal(t, "2026-03-10", resp.Record.Date)
	assert.True(t, resp.Record.NormalHours.Equal(decimal.NewFromInt(8)))

	// THEN: Presence is empty again and the ledger holds the record
	rec = doJSON(t, router, http.MethodGet, "/api/active_clockins", nil)
	assert.Empty(t, decode[[]ActiveClockInDTO](t, rec))

	rec = doJSON(t, router, http.MethodGet, "/api/attendance?year=2026&month=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ledger := decode[[]AttendanceRecordDTO](t, rec)
	require.Len(t, ledger, 1)
	assert.Equal(t, "W1", ledger[0].WorkerID)
}

func TestClockOut_Idle_ReturnsNoop(t *testing.T) {
	// GIVEN: A worker who never clocked in
	_, _, router := setup(t)

	// WHEN: Clocking out
	rec := doJSON(t, router, http.MethodPost, "/api/clockout", ClockOutRequest{WorkerID: "ghost"})

	// THEN: 200 with status noop, not an error
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[ClockOutResponse](t, rec)
	assert.Equal(t, "noop", resp.Status)
	assert.Nil(t, resp.Record)
}

func TestClockIn_WithoutProject_Rejected(t *testing.T) {
	_, _, router := setup(t)

	rec := doJSON(t, router, http.MethodPost, "/api/clockin", ClockInRequest{WorkerID: "W1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReplaceActiveClockIns_TableAdapter(t *testing.T) {
	// GIVEN: Two workers clocked in
	_, _, router := setup(t)

	for _, id := range []string{"W1", "W2"} {
		rec := doJSON(t, router, http.MethodPost, "/api/clockin", ClockInRequest{
			WorkerID: id, ProjectID: "P1",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// WHEN: A sheet-style client POSTs a table containing only W1
	rec := doJSON(t, router, http.MethodPost, "/api/active_clockins", []ActiveClockInDTO{
		{WorkerID: "W1", ClockInAt: "2026-03-10T08:00:00Z", ProjectID: "P2"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// THEN: The table now matches the posted array exactly
	rec = doJSON(t, router, http.MethodGet, "/api/active_clockins", nil)
	active := decode[[]ActiveClockInDTO](t, rec)
	require.Len(t, active, 1)
	assert.Equal(t, "W1", active[0].WorkerID)
	assert.Equal(t, "P2", active[0].ProjectID)
}

func TestAppendAttendance_UnionNeverDeletes(t *testing.T) {
	// GIVEN: A ledger with one record
	_, _, router := setup(t)

	first := AttendanceRecordDTO{
		ID: "R1", WorkerID: "W1", Date: "2026-03-02",
		NormalHours: decimal.NewFromInt(8), OvertimeHours: decimal.Zero,
		TransportClaim: decimal.Zero,
	}
	rec := doJSON(t, router, http.MethodPost, "/api/attendance", []AttendanceRecordDTO{first})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[PostAttendanceResponse](t, rec)
	assert.Equal(t, 1, resp.Appended)

	// WHEN: A stale client POSTs a table with R1 again plus a new row
	second := AttendanceRecordDTO{
		ID: "R2", WorkerID: "W2", Date: "2026-03-03",
		NormalHours: decimal.NewFromInt(7), OvertimeHours: decimal.Zero,
		TransportClaim: decimal.Zero,
	}
	rec = doJSON(t, router, http.MethodPost, "/api/attendance", []AttendanceRecordDTO{first, second})
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[PostAttendanceResponse](t, rec)

	// THEN: The known id is ignored, the new one appended, nothing lost
	assert.Equal(t, 1, resp.Appended)
	assert.Equal(t, 1, resp.Ignored)

	rec = doJSON(t, router, http.MethodGet, "/api/attendance?year=2026&month=3", nil)
	ledger := decode[[]AttendanceRecordDTO](t, rec)
	assert.Len(t, ledger, 2)
}

func TestPayroll_Endpoint(t *testing.T) {
	// GIVEN: A monthly-rated worker with one 8h day in March
	store, _, router := setup(t)
	ctx := context.Background()

	require.NoError(t, store.SaveWorker(ctx, attendance.Worker{
		ID:       "W1",
		Name:     "Rahman",
		RateType: attendance.RateMonthly,
		Rate:     decimal.NewFromInt(4400),
	}))
	require.NoError(t, store.Append(ctx, attendance.AttendanceRecord{
		ID:          "R1",
		WorkerID:    "W1",
		Date:        time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), // Tuesday
		NormalHours: decimal.NewFromInt(8),
	}))

	// WHEN: Requesting the March payroll
	rec := doJSON(t, router, http.MethodGet, "/api/payroll?year=2026&month=3", nil)

	// THEN: One summary with the MOM-derived rate applied
	require.Equal(t, http.StatusOK, rec.Code)
	summaries := decode[[]PayrollSummaryDTO](t, rec)
	require.Len(t, summaries, 1)
	assert.Equal(t, "W1", summaries[0].WorkerID)
	// 4400 * 12 / (52 * 44) = 23.0769... per hour
	assert.True(t, summaries[0].HourlyRate.Sub(decimal.RequireFromString("23.0769")).Abs().
		LessThan(decimal.RequireFromString("0.001")),
		"hourly rate = %s", summaries[0].HourlyRate)
	assert.True(t, summaries[0].NormalHours.Equal(decimal.NewFromInt(8)))
}

func TestReminders_CreateAndDismiss(t *testing.T) {
	// GIVEN: A due ALL-scope reminder
	_, handler, router := setup(t)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	handler.WithClock(func() time.Time { return now })

	rec := doJSON(t, router, http.MethodPost, "/api/reminders", CreateReminderRequest{
		CreatorID: "boss",
		Scope:     "ALL",
		RemindAt:  now.Add(-time.Hour).Format(time.RFC3339),
		Message:   "submit timesheets",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[ReminderDTO](t, rec)

	// WHEN: Viewer U1 asks for due reminders
	rec = doJSON(t, router, http.MethodGet, "/api/reminders?viewer_id=U1&due=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]ReminderDTO](t, rec), 1)

	// WHEN: U1 dismisses
	rec = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/reminders/%s/dismiss", created.ID),
		DismissReminderRequest{ViewerID: "U1"})
	require.Equal(t, http.StatusOK, rec.Code)

	// THEN: Gone for U1, still due for U2
	rec = doJSON(t, router, http.MethodGet, "/api/reminders?viewer_id=U1&due=true", nil)
	assert.Empty(t, decode[[]ReminderDTO](t, rec))

	rec = doJSON(t, router, http.MethodGet, "/api/reminders?viewer_id=U2&due=true", nil)
	assert.Len(t, decode[[]ReminderDTO](t, rec), 1)
}

func TestReminders_FirstDueOnly(t *testing.T) {
	// GIVEN: Three ALL-scope reminders, all due
	_, handler, router := setup(t)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	handler.WithClock(func() time.Time { return now })

	for i, msg := range []string{"toolbox talk", "submit timesheets", "order cement"} {
		rec := doJSON(t, router, http.MethodPost, "/api/reminders", CreateReminderRequest{
			CreatorID: "boss",
			Scope:     "ALL",
			RemindAt:  now.Add(time.Duration(i-3) * time.Hour).Format(time.RFC3339),
			Message:   msg,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// WHEN: The UI polls with first=true
	rec := doJSON(t, router, http.MethodGet, "/api/reminders?viewer_id=U1&due=true&first=true", nil)

	// THEN: Only the earliest due reminder is surfaced; the rest queue
	require.Equal(t, http.StatusOK, rec.Code)
	first := decode[[]ReminderDTO](t, rec)
	require.Len(t, first, 1)
	assert.Equal(t, "toolbox talk", first[0].Message)

	// WHEN: The viewer dismisses it and polls again
	rec = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/reminders/%s/dismiss", first[0].ID),
		DismissReminderRequest{ViewerID: "U1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/reminders?viewer_id=U1&due=true&first=true", nil)
	next := decode[[]ReminderDTO](t, rec)

	// THEN: The next queued reminder surfaces
	require.Len(t, next, 1)
	assert.Equal(t, "submit timesheets", next[0].Message)
}

func TestReminders_InvalidScope_Rejected(t *testing.T) {
	_, _, router := setup(t)

	rec := doJSON(t, router, http.MethodPost, "/api/reminders", CreateReminderRequest{
		CreatorID: "boss",
		Scope:     "EVERYONE",
		RemindAt:  time.Now().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHolidays_AffectPayrollMultiplier(t *testing.T) {
	// GIVEN: A weekday holiday and an OT shift on it
	store, _, router := setup(t)
	ctx := context.Background()

	rec := doJSON(t, router, http.MethodPost, "/api/holidays", CreateHolidayRequest{
		Date: "2026-03-04", // Wednesday
		Name: "Site Holiday",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, store.SaveWorker(ctx, attendance.Worker{
		ID:       "W1",
		Name:     "Kumar",
		RateType: attendance.RateHourly,
		Rate:     decimal.NewFromInt(10),
	}))
	require.NoError(t, store.Append(ctx, attendance.AttendanceRecord{
		ID:            "R1",
		WorkerID:      "W1",
		Date:          time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		NormalHours:   decimal.NewFromInt(8),
		OvertimeHours: decimal.NewFromInt(2),
	}))

	// WHEN: Requesting payroll for the month
	rec = doJSON(t, router, http.MethodGet, "/api/payroll?year=2026&month=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summaries := decode[[]PayrollSummaryDTO](t, rec)
	require.Len(t, summaries, 1)

	// THEN: The two OT hours were paid at the 2.0x holiday tier
	assert.True(t, summaries[0].OTHours20.Equal(decimal.NewFromInt(2)),
		"2.0x tier = %s", summaries[0].OTHours20)
	// 8*10 + 2*10*2.0 = 120
	assert.True(t, summaries[0].TotalPay.Equal(decimal.NewFromInt(120)),
		"total = %s", summaries[0].TotalPay)
}

func TestExpiringWorkers(t *testing.T) {
	// GIVEN: One pass expiring inside the window, one far out
	store, handler, router := setup(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	handler.WithClock(func() time.Time { return now })

	soon := now.AddDate(0, 0, 30)
	far := now.AddDate(0, 0, 200)
	require.NoError(t, store.SaveWorker(ctx, attendance.Worker{
		ID: "W1", Name: "Expiring", RateType: attendance.RateDaily,
		Rate: decimal.NewFromInt(80), PassExpiry: &soon,
	}))
	require.NoError(t, store.SaveWorker(ctx, attendance.Worker{
		ID: "W2", Name: "Fine", RateType: attendance.RateDaily,
		Rate: decimal.NewFromInt(80), PassExpiry: &far,
	}))

	// WHEN: Asking for expiring passes
	rec := doJSON(t, router, http.MethodGet, "/api/workers/expiring", nil)

	// THEN: Only the one inside the warning window, with days left
	require.Equal(t, http.StatusOK, rec.Code)
	expiring := decode[[]ExpiringWorkerDTO](t, rec)
	require.Len(t, expiring, 1)
	assert.Equal(t, "W1", expiring[0].ID)
	assert.Equal(t, 30, expiring[0].DaysLeft)
	assert.Less(t, expiring[0].DaysLeft, calendar.ExpiryWarningDays)
}

func TestSaveWorker_Validation(t *testing.T) {
	_, _, router := setup(t)

	// Unknown rate type is rejected at the boundary
	rec := doJSON(t, router, http.MethodPost, "/api/workers", SaveWorkerRequest{
		Name:     "Bad",
		RateType: "WEEKLY",
		Rate:     decimal.NewFromInt(100),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// A valid worker round-trips
	rec = doJSON(t, router, http.MethodPost, "/api/workers", SaveWorkerRequest{
		ID:       "W1",
		Name:     "Tan",
		RateType: "HOURLY",
		Rate:     decimal.NewFromInt(15),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/workers/W1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[WorkerDTO](t, rec)
	assert.Equal(t, "Tan", got.Name)

	rec = doJSON(t, router, http.MethodGet, "/api/workers/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

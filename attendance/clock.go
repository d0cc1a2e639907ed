/*
clock.go - The clock-in/out state machine

PURPOSE:
  Transitions a worker between Idle and Present and, on clock-out,
  derives the normal/overtime hour split and appends one ledger record.

STATES:
  Idle    -> worker has no ActiveClockIn
  Present -> worker has exactly one ActiveClockIn

  There is no break or paused state; an overnight shift is a flag on
  Present, not a separate state.

DERIVATION RULE (the one real algorithm in this system):
  1. raw      = hours between clock-in and clock-out
  2. net      = max(0, raw - 1)          fixed 1-hour lunch deduction
  3. normal   = min(net, 8), ot = max(0, net - 8)
  4. both rounded to one decimal place
  5. meal allowance suggested when ot >= 2

  Every derived field can be overridden by the supervisor before the
  record is finalized; Preview exists so the UI can show the proposal
  and confirm instead of auto-committing.

EDGE CASES:
  - ClockIn while already Present replaces the entry (last-write-wins;
    multi-device races are expected, not guarded against).
  - ClockOut while Idle is ErrNotClockedIn; callers no-op.
  - Negative or zero elapsed time (clock skew) clamps both splits to
    zero; the record is still created and a warning is logged.

SEE ALSO:
  - types.go: AttendanceRecord shape
  - store.go: PresenceStore / LedgerStore contracts
*/
package attendance

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// DERIVATION
// =============================================================================

const (
	// LunchDeductionHours is subtracted from every shift, floored at 0.
	LunchDeductionHours = 1

	// NormalHoursThreshold splits net hours into normal vs overtime.
	NormalHoursThreshold = 8

	// MealAllowanceOTHours is the overtime level at which the meal
	// allowance flag is suggested.
	MealAllowanceOTHours = 2
)

var (
	lunchDeduction  = decimal.NewFromInt(LunchDeductionHours)
	normalThreshold = decimal.NewFromInt(NormalHoursThreshold)
	mealOTThreshold = decimal.NewFromInt(MealAllowanceOTHours)
)

// Derived is the proposed outcome of a clock-out before any supervisor
// override.
type Derived struct {
	RawHours      decimal.Decimal
	NormalHours   decimal.Decimal
	OvertimeHours decimal.Decimal
	MealAllowance bool
}

// DeriveHours computes the normal/overtime split for a shift. Negative
// elapsed time degrades to zero hours rather than erroring.
func DeriveHours(clockInAt, clockOutAt time.Time) Derived {
	raw := decimal.NewFromFloat(clockOutAt.Sub(clockInAt).Hours())

	net := raw.Sub(lunchDeduction)
	if net.IsNegative() {
		net = decimal.Zero
	}

	normal := net
	ot := decimal.Zero
	if net.GreaterThan(normalThreshold) {
		normal = normalThreshold
		ot = net.Sub(normalThreshold)
	}

	normal = normal.Round(1)
	ot = ot.Round(1)

	return Derived{
		RawHours:      raw.Round(1),
		NormalHours:   normal,
		OvertimeHours: ot,
		MealAllowance: ot.GreaterThanOrEqual(mealOTThreshold),
	}
}

// Override carries the supervisor's corrections from the confirmation
// step. Nil fields keep the derived value.
type Override struct {
	NormalHours    *decimal.Decimal
	OvertimeHours  *decimal.Decimal
	MealAllowance  *bool
	TransportClaim *decimal.Decimal
	Remarks        string
}

// =============================================================================
// TRACKER - the state machine over the stores
// =============================================================================

// Tracker coordinates the presence set and the attendance ledger.
type Tracker struct {
	presence PresenceStore
	ledger   LedgerStore

	newID func() string // record id generation, injectable for tests
}

// NewTracker creates a tracker over the given stores.
func NewTracker(presence PresenceStore, ledger LedgerStore) *Tracker {
	return &Tracker{
		presence: presence,
		ledger:   ledger,
		newID:    uuid.NewString,
	}
}

// WithIDFunc overrides record id generation. Test hook.
func (t *Tracker) WithIDFunc(fn func() string) *Tracker {
	t.newID = fn
	return t
}

// ClockIn moves a worker to Present on the given project. A worker who
// is already Present is re-clocked-in: the previous entry is replaced,
// not duplicated and not rejected.
func (t *Tracker) ClockIn(ctx context.Context, workerID, projectID string, overnight bool, at time.Time) error {
	if workerID == "" {
		return fmt.Errorf("%w: missing worker id", ErrInvalidWorker)
	}
	if projectID == "" {
		return ErrNoProject
	}

	return t.presence.Put(ctx, ActiveClockIn{
		WorkerID:  workerID,
		ClockInAt: at.UTC(),
		ProjectID: projectID,
		Overnight: overnight,
	})
}

// Preview derives the proposed attendance record for a worker's pending
// clock-out without committing anything. The UI shows this on the
// confirmation screen.
func (t *Tracker) Preview(ctx context.Context, workerID string, at time.Time) (Derived, *ActiveClockIn, error) {
	entry, err := t.presence.Get(ctx, workerID)
	if err != nil {
		return Derived{}, nil, err
	}
	if entry == nil {
		return Derived{}, nil, &NotClockedInError{WorkerID: workerID, At: at}
	}
	return DeriveHours(entry.ClockInAt, at), entry, nil
}

// ClockOut finalizes a worker's shift: derives hours, applies the
// supervisor's override, appends exactly one AttendanceRecord, and
// removes the worker from the presence set.
func (t *Tracker) ClockOut(ctx context.Context, workerID string, at time.Time, ov *Override) (*AttendanceRecord, error) {
	entry, err := t.presence.Get(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, &NotClockedInError{WorkerID: workerID, At: at}
	}

	d := DeriveHours(entry.ClockInAt, at)
	if d.RawHours.LessThanOrEqual(decimal.Zero) {
		log.Printf("[Tracker] zero or negative elapsed time for worker %s (in=%s out=%s), recording zero hours",
			workerID, entry.ClockInAt.Format(time.RFC3339), at.UTC().Format(time.RFC3339))
	}

	rec := AttendanceRecord{
		ID:            t.newID(),
		WorkerID:      workerID,
		Date:          shiftDate(entry),
		NormalHours:   d.NormalHours,
		OvertimeHours: d.OvertimeHours,
		ProjectID:     entry.ProjectID,
		MealAllowance: d.MealAllowance,
	}

	if ov != nil {
		if ov.NormalHours != nil {
			rec.NormalHours = *ov.NormalHours
		}
		if ov.OvertimeHours != nil {
			rec.OvertimeHours = *ov.OvertimeHours
		}
		if ov.MealAllowance != nil {
			rec.MealAllowance = *ov.MealAllowance
		}
		if ov.TransportClaim != nil {
			rec.TransportClaim = *ov.TransportClaim
		}
		rec.Remarks = ov.Remarks
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if err := t.ledger.Append(ctx, rec); err != nil {
		return nil, err
	}
	if err := t.presence.Remove(ctx, workerID); err != nil {
		// The record is committed; a stale presence row is repaired by
		// the next clock-in for this worker.
		log.Printf("[Tracker] failed to clear presence for worker %s: %v", workerID, err)
	}

	return &rec, nil
}

// shiftDate attributes the record to the calendar day the shift started,
// so a shift spanning midnight books to its start date.
func shiftDate(entry *ActiveClockIn) time.Time {
	y, m, d := entry.ClockInAt.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

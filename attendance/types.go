/*
Package attendance implements the site clock-in/out state machine and the
attendance ledger it feeds.

PURPOSE:
  A worker on a construction site is either Idle (no active clock-in) or
  Present (exactly one active clock-in). Supervisors move workers between
  the two states; each clock-out finalizes one immutable AttendanceRecord
  carrying the normal/overtime hour split used later by payroll.

KEY CONCEPTS IN THIS FILE (types.go):
  - Worker: roster entry with a pay-rate configuration
  - ActiveClockIn: working-set presence state (not history)
  - AttendanceRecord: append-only finalized unit of worked time

DESIGN PRINCIPLES:
  1. Immutability: attendance records are never mutated once appended
  2. Precision: decimal.Decimal for hours and money, never float math
  3. Single presence: at most one ActiveClockIn per worker, enforced by
     the store key, not by caller discipline
  4. Boundary validation: records are validated before they reach a store

SEE ALSO:
  - clock.go: the Idle/Present transitions and hour derivation
  - store.go: persistence interfaces
  - payroll: monthly aggregation over AttendanceRecords
*/
package attendance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// WORKER - roster entry
// =============================================================================

// RateType selects how a worker's configured rate converts to pay.
type RateType string

const (
	RateMonthly RateType = "MONTHLY"
	RateDaily   RateType = "DAILY"
	RateHourly  RateType = "HOURLY"
)

func (rt RateType) Valid() bool {
	switch rt {
	case RateMonthly, RateDaily, RateHourly:
		return true
	}
	return false
}

// Worker is a person eligible for site work. Optional fields apply only to
// some workers: Levy and PassExpiry to foreign workers, EmployerCPF to
// locals. Zero values mean "not applicable", validated at the persistence
// boundary rather than trusted at each call site.
type Worker struct {
	ID           string
	Name         string
	RateType     RateType
	Rate         decimal.Decimal
	Levy         decimal.Decimal
	Nationality  string
	PassExpiry   *time.Time
	ShowInRoster bool
	EmployerCPF  decimal.Decimal
}

// Validate checks the invariants a worker record must satisfy before it
// is persisted.
func (w Worker) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidWorker)
	}
	if w.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidWorker)
	}
	if !w.RateType.Valid() {
		return fmt.Errorf("%w: unknown rate type %q", ErrInvalidWorker, w.RateType)
	}
	if w.Rate.IsNegative() {
		return fmt.Errorf("%w: negative rate", ErrInvalidWorker)
	}
	return nil
}

// =============================================================================
// ACTIVE CLOCK-IN - presence state, not history
// =============================================================================

// ActiveClockIn records that a worker is currently on site. It is
// working-set state: created on clock-in, destroyed by the matching
// clock-out, never kept as an audit trail.
type ActiveClockIn struct {
	WorkerID  string
	ClockInAt time.Time
	ProjectID string
	Overnight bool
}

// =============================================================================
// ATTENDANCE RECORD - immutable ledger entry
// =============================================================================

// AttendanceRecord is one finalized unit of worked time, created exactly
// once per clock-out.
type AttendanceRecord struct {
	ID             string
	WorkerID       string
	Date           time.Time
	NormalHours    decimal.Decimal
	OvertimeHours  decimal.Decimal
	ProjectID      string
	MealAllowance  bool
	TransportClaim decimal.Decimal
	Remarks        string
}

// Validate checks the ledger invariants: identified, attributed, and
// non-negative hour splits.
func (r AttendanceRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if r.WorkerID == "" {
		return fmt.Errorf("%w: missing worker id", ErrInvalidRecord)
	}
	if r.NormalHours.IsNegative() || r.OvertimeHours.IsNegative() {
		return fmt.Errorf("%w: negative hours", ErrInvalidRecord)
	}
	return nil
}

// Project populates the supervisor's selection list and resolves display
// names on reports.
type Project struct {
	ID     string
	Name   string
	Client string
	Active bool
}

/*
errors.go - Centralized error types for the attendance core

PURPOSE:
  All sentinel errors in one place. Callers classify with errors.Is();
  structured errors carry context and unwrap to a sentinel.

SEE ALSO:
  - clock.go: returns ErrNoProject / ErrNotClockedIn
  - store.go: store implementations return ErrDuplicateRecord
*/
package attendance

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - use with errors.Is()
// =============================================================================

var (
	// ErrNoProject is returned when a clock-in has no target project
	// selected. The UI treats this as a blocking alert, not a crash.
	ErrNoProject = errors.New("clock-in requires a project")

	// ErrNotClockedIn is returned when clocking out a worker with no
	// active clock-in. Callers treat the transition as a no-op.
	ErrNotClockedIn = errors.New("worker is not clocked in")

	// ErrDuplicateRecord is returned when appending an attendance record
	// whose id already exists in the ledger. Expected on retries.
	ErrDuplicateRecord = errors.New("duplicate attendance record")

	// ErrInvalidWorker is returned when a worker fails boundary validation.
	ErrInvalidWorker = errors.New("invalid worker")

	// ErrInvalidRecord is returned when an attendance record fails
	// boundary validation.
	ErrInvalidRecord = errors.New("invalid attendance record")
)

// =============================================================================
// STRUCTURED ERRORS - carry additional context
// =============================================================================

// NotClockedInError identifies which worker the failed clock-out targeted.
type NotClockedInError struct {
	WorkerID string
	At       time.Time
}

func (e *NotClockedInError) Error() string {
	return fmt.Sprintf("worker %s is not clocked in at %s", e.WorkerID, e.At.Format(time.RFC3339))
}

func (e *NotClockedInError) Unwrap() error { return ErrNotClockedIn }

// IsClientError reports whether the error is due to invalid caller input
// rather than a store failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrNoProject) ||
		errors.Is(err, ErrNotClockedIn) ||
		errors.Is(err, ErrInvalidWorker) ||
		errors.Is(err, ErrInvalidRecord) ||
		errors.Is(err, ErrDuplicateRecord)
}

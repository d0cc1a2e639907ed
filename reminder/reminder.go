/*
Package reminder implements the scope-based reminder due-check.

PURPOSE:
  A reminder moves Pending -> Dismissed. It is "due" for a viewer when
  its remind-at time has passed, its scope matches the viewer, and that
  viewer has not yet dismissed it. The check is polled on a fixed
  interval; only the first due reminder is surfaced per evaluation,
  queuing the rest.

DISMISSAL ASYMMETRY (intentional):
  SELF          one global flag - a private note needs one acknowledgment
  ALL/SPECIFIC  per-viewer list  - a broadcast needs per-recipient
                acknowledgment
*/
package reminder

import (
	"context"
	"errors"
	"time"
)

// =============================================================================
// TYPES
// =============================================================================

// Scope is the audience rule for a reminder.
type Scope string

const (
	ScopeSelf     Scope = "SELF"
	ScopeAll      Scope = "ALL"
	ScopeSpecific Scope = "SPECIFIC"
)

func (s Scope) Valid() bool {
	switch s {
	case ScopeSelf, ScopeAll, ScopeSpecific:
		return true
	}
	return false
}

// Reminder is a scheduled note with an audience.
type Reminder struct {
	ID            string
	CreatorID     string
	Scope         Scope
	TargetUserIDs []string // SPECIFIC scope only
	RemindAt      time.Time
	Message       string

	Dismissed   bool     // SELF scope: single global flag
	DismissedBy []string // ALL/SPECIFIC scope: per-viewer acknowledgments
}

var (
	ErrInvalidScope = errors.New("invalid reminder scope")
	ErrNotFound     = errors.New("reminder not found")
)

// Validate checks a reminder before it is persisted.
func (r Reminder) Validate() error {
	if !r.Scope.Valid() {
		return ErrInvalidScope
	}
	return nil
}

// Store persists reminders.
type Store interface {
	GetReminder(ctx context.Context, id string) (*Reminder, error)
	SaveReminder(ctx context.Context, r Reminder) error
	ListReminders(ctx context.Context) ([]Reminder, error)
}

// =============================================================================
// DUE CHECK
// =============================================================================

// VisibleTo reports whether the reminder's scope matches the viewer,
// ignoring dismissal and timing.
func (r Reminder) VisibleTo(viewerID string) bool {
	switch r.Scope {
	case ScopeAll:
		return true
	case ScopeSelf:
		return viewerID == r.CreatorID
	case ScopeSpecific:
		for _, id := range r.TargetUserIDs {
			if id == viewerID {
				return true
			}
		}
	}
	return false
}

// DismissedFor reports whether the reminder is already acknowledged for
// the viewer, honoring the scope asymmetry.
func (r Reminder) DismissedFor(viewerID string) bool {
	if r.Scope == ScopeSelf {
		return r.Dismissed
	}
	for _, id := range r.DismissedBy {
		if id == viewerID {
			return true
		}
	}
	return false
}

// DueFor reports whether the reminder should be surfaced to the viewer now.
func (r Reminder) DueFor(viewerID string, now time.Time) bool {
	return !r.RemindAt.After(now) && r.VisibleTo(viewerID) && !r.DismissedFor(viewerID)
}

// Dismiss acknowledges the reminder for the viewer and returns the
// updated reminder. SELF scope dismisses globally; other scopes append
// the viewer to the dismissed-by list. Dismissing twice is harmless.
func (r Reminder) Dismiss(viewerID string) Reminder {
	if r.Scope == ScopeSelf {
		r.Dismissed = true
		return r
	}
	if !r.DismissedFor(viewerID) {
		r.DismissedBy = append(append([]string(nil), r.DismissedBy...), viewerID)
	}
	return r
}

// FirstDue returns the first due reminder for the viewer, or nil. The
// rest stay queued for the next polling cycle.
func FirstDue(reminders []Reminder, viewerID string, now time.Time) *Reminder {
	for i := range reminders {
		if reminders[i].DueFor(viewerID, now) {
			return &reminders[i]
		}
	}
	return nil
}

package reminder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitecrew/attendance-engine/reminder"
)

var now = time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)

func due(scope reminder.Scope, creator string, targets ...string) reminder.Reminder {
	return reminder.Reminder{
		ID:            "r1",
		CreatorID:     creator,
		Scope:         scope,
		TargetUserIDs: targets,
		RemindAt:      now.Add(-time.Minute),
		Message:       "submit timesheets",
	}
}

// =============================================================================
// VISIBILITY
// =============================================================================

func TestDueFor_ScopeMatching(t *testing.T) {
	assert.True(t, due(reminder.ScopeAll, "u1").DueFor("u2", now), "ALL matches everyone")
	assert.True(t, due(reminder.ScopeSelf, "u1").DueFor("u1", now), "SELF matches creator")
	assert.False(t, due(reminder.ScopeSelf, "u1").DueFor("u2", now), "SELF hides from others")
}

func TestDueFor_SpecificScope(t *testing.T) {
	// GIVEN: scope=SPECIFIC targeting U1
	// THEN: due for U1, never for U2, regardless of dismissal state

	r := due(reminder.ScopeSpecific, "boss", "u1")
	assert.True(t, r.DueFor("u1", now))
	assert.False(t, r.DueFor("u2", now))

	dismissed := r.Dismiss("u1")
	assert.False(t, dismissed.DueFor("u1", now))
	assert.False(t, dismissed.DueFor("u2", now))
}

func TestDueFor_NotYetDue(t *testing.T) {
	r := due(reminder.ScopeAll, "u1")
	r.RemindAt = now.Add(time.Hour)
	assert.False(t, r.DueFor("u1", now))
	assert.True(t, r.DueFor("u1", now.Add(time.Hour)), "due exactly at remindAt")
}

// =============================================================================
// DISMISSAL ASYMMETRY
// =============================================================================

func TestDismiss_SelfScopeIsGlobal(t *testing.T) {
	// Dismissing a SELF reminder as its creator makes it non-due for everyone.

	r := due(reminder.ScopeSelf, "u1").Dismiss("u1")
	assert.True(t, r.Dismissed)
	assert.False(t, r.DueFor("u1", now))
}

func TestDismiss_AllScopeIsPerViewer(t *testing.T) {
	// GIVEN: an ALL-scope reminder dismissed by U1
	// THEN: still due for U2

	r := due(reminder.ScopeAll, "boss").Dismiss("u1")
	assert.False(t, r.DueFor("u1", now))
	assert.True(t, r.DueFor("u2", now))

	// Double dismissal does not duplicate the acknowledgment.
	r = r.Dismiss("u1")
	assert.Equal(t, []string{"u1"}, r.DismissedBy)
}

// =============================================================================
// POLLING SURFACE
// =============================================================================

func TestFirstDue_SurfacesOnlyFirstMatch(t *testing.T) {
	first := due(reminder.ScopeAll, "boss")
	first.ID = "r1"
	second := due(reminder.ScopeAll, "boss")
	second.ID = "r2"
	notMine := due(reminder.ScopeSelf, "someone-else")
	notMine.ID = "r0"

	got := reminder.FirstDue([]reminder.Reminder{notMine, first, second}, "u1", now)
	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ID, "first matching reminder wins, rest queue")

	assert.Nil(t, reminder.FirstDue(nil, "u1", now))
}

func TestValidate_RejectsUnknownScope(t *testing.T) {
	r := due(reminder.ScopeAll, "u1")
	r.Scope = "TEAM"
	assert.ErrorIs(t, r.Validate(), reminder.ErrInvalidScope)
}

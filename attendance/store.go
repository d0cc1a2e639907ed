/*
store.go - Persistence interfaces for presence state and the ledger

PURPOSE:
  Defines the boundary between the clock-in/out state machine and the
  database. Storage is per-record: the presence set is keyed by worker id
  (upsert/remove), the ledger is append-only. Whole-table replacement is
  NOT part of this contract; where the legacy HTTP surface needs it, the
  API layer adapts on top of these interfaces.

KEY INTERFACES:
  PresenceStore: the Active Presence Set (one row per clocked-in worker)
  LedgerStore:   finalized attendance records (append, no update/delete)
  WorkerStore:   the roster
  ProjectStore:  the project selection list

APPEND-ONLY CONTRACT:
  LedgerStore has Append and reads only. Admin deletion of a record is an
  out-of-band operation on the database, never part of this interface.

IMPLEMENTATIONS:
  - store/sqlite: production SQLite
  - attendance/store: in-memory for tests
*/
package attendance

import (
	"context"
	"time"
)

// =============================================================================
// PRESENCE STORE - the Active Presence Set
// =============================================================================

// PresenceStore holds the set of workers currently clocked in. Keyed by
// worker id, so a second Put for the same worker replaces the first:
// the single-presence invariant lives in the store, not the caller.
type PresenceStore interface {
	// Get returns the active clock-in for a worker, or nil if idle.
	Get(ctx context.Context, workerID string) (*ActiveClockIn, error)

	// Put inserts or replaces the active clock-in for entry.WorkerID.
	Put(ctx context.Context, entry ActiveClockIn) error

	// Remove deletes the active clock-in for a worker. Removing an idle
	// worker is not an error.
	Remove(ctx context.Context, workerID string) error

	// List returns all active clock-ins ordered by worker id.
	List(ctx context.Context) ([]ActiveClockIn, error)
}

// =============================================================================
// LEDGER STORE - append-only attendance history
// =============================================================================

// LedgerStore persists finalized attendance records.
type LedgerStore interface {
	// Append adds one record. Returns ErrDuplicateRecord if the id
	// already exists; retries are therefore safe.
	Append(ctx context.Context, rec AttendanceRecord) error

	// ListMonth returns records whose date falls in the given month,
	// ordered by date then worker id.
	ListMonth(ctx context.Context, year int, month time.Month) ([]AttendanceRecord, error)

	// ListWorker returns all records for one worker ordered by date.
	ListWorker(ctx context.Context, workerID string) ([]AttendanceRecord, error)

	// ListRange returns records with from <= date < to.
	ListRange(ctx context.Context, from, to time.Time) ([]AttendanceRecord, error)
}

// =============================================================================
// ROSTER STORES
// =============================================================================

// WorkerStore persists the worker roster. Method names are qualified so
// one store type can implement every interface in this file.
type WorkerStore interface {
	GetWorker(ctx context.Context, id string) (*Worker, error)
	SaveWorker(ctx context.Context, w Worker) error
	ListWorkers(ctx context.Context) ([]Worker, error)
}

// ProjectStore persists the project roster.
type ProjectStore interface {
	GetProject(ctx context.Context, id string) (*Project, error)
	SaveProject(ctx context.Context, p Project) error
	ListProjects(ctx context.Context) ([]Project, error)
}

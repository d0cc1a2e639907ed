// Package store provides in-memory implementations of the attendance
// persistence interfaces, used by tests and local development.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sitecrew/attendance-engine/attendance"
)

// =============================================================================
// MEMORY PRESENCE STORE
// =============================================================================

type MemoryPresence struct {
	mu      sync.RWMutex
	entries map[string]attendance.ActiveClockIn
}

func NewMemoryPresence() *MemoryPresence {
	return &MemoryPresence{entries: make(map[string]attendance.ActiveClockIn)}
}

func (m *MemoryPresence) Get(_ context.Context, workerID string) (*attendance.ActiveClockIn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[workerID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// Put inserts or replaces; the map key carries the single-presence invariant.
func (m *MemoryPresence) Put(_ context.Context, entry attendance.ActiveClockIn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.WorkerID] = entry
	return nil
}

func (m *MemoryPresence) Remove(_ context.Context, workerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, workerID)
	return nil
}

func (m *MemoryPresence) List(_ context.Context) ([]attendance.ActiveClockIn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]attendance.ActiveClockIn, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WorkerID < out[j].WorkerID })
	return out, nil
}

// =============================================================================
// MEMORY LEDGER STORE
// =============================================================================

type MemoryLedger struct {
	mu      sync.RWMutex
	records []attendance.AttendanceRecord
	ids     map[string]bool
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{ids: make(map[string]bool)}
}

func (m *MemoryLedger) Append(_ context.Context, rec attendance.AttendanceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ids[rec.ID] {
		return attendance.ErrDuplicateRecord
	}

	// Insert sorted by (date, worker id) so reads need no re-sort.
	i := sort.Search(len(m.records), func(i int) bool {
		if !m.records[i].Date.Equal(rec.Date) {
			return m.records[i].Date.After(rec.Date)
		}
		return m.records[i].WorkerID > rec.WorkerID
	})
	m.records = append(m.records, attendance.AttendanceRecord{})
	copy(m.records[i+1:], m.records[i:])
	m.records[i] = rec

	m.ids[rec.ID] = true
	return nil
}

func (m *MemoryLedger) ListMonth(_ context.Context, year int, month time.Month) ([]attendance.AttendanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []attendance.AttendanceRecord
	for _, r := range m.records {
		if r.Date.Year() == year && r.Date.Month() == month {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryLedger) ListWorker(_ context.Context, workerID string) ([]attendance.AttendanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []attendance.AttendanceRecord
	for _, r := range m.records {
		if r.WorkerID == workerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryLedger) ListRange(_ context.Context, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []attendance.AttendanceRecord
	for _, r := range m.records {
		if !r.Date.Before(from) && r.Date.Before(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

// =============================================================================
// MEMORY ROSTER STORES
// =============================================================================

type MemoryWorkers struct {
	mu      sync.RWMutex
	workers map[string]attendance.Worker
}

func NewMemoryWorkers() *MemoryWorkers {
	return &MemoryWorkers{workers: make(map[string]attendance.Worker)}
}

func (m *MemoryWorkers) GetWorker(_ context.Context, id string) (*attendance.Worker, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.workers[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (m *MemoryWorkers) SaveWorker(_ context.Context, w attendance.Worker) error {
	if err := w.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workers[w.ID] = w
	return nil
}

func (m *MemoryWorkers) ListWorkers(_ context.Context) ([]attendance.Worker, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]attendance.Worker, 0, len(m.workers))
	for _, w := range m.workers {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type MemoryProjects struct {
	mu       sync.RWMutex
	projects map[string]attendance.Project
}

func NewMemoryProjects() *MemoryProjects {
	return &MemoryProjects{projects: make(map[string]attendance.Project)}
}

func (m *MemoryProjects) GetProject(_ context.Context, id string) (*attendance.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *MemoryProjects) SaveProject(_ context.Context, p attendance.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[p.ID] = p
	return nil
}

func (m *MemoryProjects) ListProjects(_ context.Context) ([]attendance.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]attendance.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

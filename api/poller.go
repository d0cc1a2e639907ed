/*
poller.go - Background reminder due-check

PURPOSE:
  Periodically scans stored reminders and surfaces the one that has come
  due, logging it server-side. The UI does its own due-check per viewer
  when it polls GET /api/reminders?due=true; this loop exists so an
  unwatched server still surfaces due reminders in its logs.

DESIGN:
  - Runs a background goroutine with configurable check interval
  - Surfaces ONE reminder per evaluation: the first due match is logged
    and marked, the rest stay queued for the next cycle
  - A reminder is logged once per process per due transition
  - SELF-scope global dismissal and per-viewer acknowledgments are
    respected by the per-viewer endpoint, not here: the server log
    reports a reminder as due while ANY addressee still has it pending

USAGE:
  poller := NewReminderPoller(store)
  poller.Start()
  // ... later
  poller.Stop()

SEE ALSO:
  - reminder/reminder.go: Due-check and dismissal semantics
  - handlers.go: ListReminders / DismissReminder endpoints
*/
package api

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/sitecrew/attendance-engine/store/sqlite"
)

// ReminderPoller surfaces reminders as they come due.
type ReminderPoller struct {
	Store         *sqlite.Store
	CheckInterval time.Duration
	Enabled       bool

	ticker *time.Ticker
	stop   chan bool
	wg     sync.WaitGroup
	mu     sync.Mutex

	repMu    sync.Mutex      // guards reported; checkDue runs from the loop and RunNow
	reported map[string]bool // reminder ids already logged this process
}

// NewReminderPoller creates a new poller.
func NewReminderPoller(store *sqlite.Store) *ReminderPoller {
	return &ReminderPoller{
		Store:         store,
		CheckInterval: 30 * time.Second,
		Enabled:       true,
		stop:          make(chan bool),
		reported:      make(map[string]bool),
	}
}

// Start begins the poller.
func (rp *ReminderPoller) Start() {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	if !rp.Enabled {
		log.Println("[Poller] Disabled, not starting")
		return
	}

	rp.ticker = time.NewTicker(rp.CheckInterval)
	rp.wg.Add(1)

	go rp.run()

	log.Printf("[Poller] Started with check interval: %v", rp.CheckInterval)
}

// Stop stops the poller.
func (rp *ReminderPoller) Stop() {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	if rp.ticker != nil {
		rp.ticker.Stop()
		close(rp.stop)
		rp.wg.Wait()
		log.Println("[Poller] Stopped")
	}
}

func (rp *ReminderPoller) run() {
	defer rp.wg.Done()

	// Run immediately on start
	rp.checkDue()

	for {
		select {
		case <-rp.ticker.C:
			rp.checkDue()
		case <-rp.stop:
			return
		}
	}
}

// checkDue surfaces at most one reminder per call. Remaining due
// reminders stay queued; each subsequent cycle surfaces the next one.
func (rp *ReminderPoller) checkDue() {
	ctx := context.Background()
	now := time.Now()

	reminders, err := rp.Store.ListReminders(ctx)
	if err != nil {
		log.Printf("[Poller] Error listing reminders: %v", err)
		return
	}

	rp.repMu.Lock()
	defer rp.repMu.Unlock()

	surfaced := false
	queued := 0
	for _, rem := range reminders {
		if now.Before(rem.RemindAt) || rem.Dismissed || rp.reported[rem.ID] {
			continue
		}
		if surfaced {
			queued++
			continue
		}
		rp.reported[rem.ID] = true
		surfaced = true
		log.Printf("[Poller] Reminder due: %s (scope=%s, from=%s): %s",
			rem.ID, rem.Scope, rem.CreatorID, rem.Message)
	}
	if queued > 0 {
		log.Printf("[Poller] %d more due reminders queued for next cycle", queued)
	}
}

// RunNow triggers an immediate check (for testing/admin).
func (rp *ReminderPoller) RunNow() {
	rp.checkDue()
}

// reportedCount returns how many reminders have been surfaced so far.
func (rp *ReminderPoller) reportedCount() int {
	rp.repMu.Lock()
	defer rp.repMu.Unlock()
	return len(rp.reported)
}

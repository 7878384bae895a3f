// Package tui provides the Bubble Tea integration for the climber.
// It handles the terminal UI loop, input latching, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var schedulerIDs atomic.Int64

// TickMsg is sent to trigger a game simulation tick. ID names the scheduler
// that requested it so stale ticks from a replaced model are ignored.
type TickMsg struct {
	ID   int64
	Time time.Time
}

// Scheduler drives the fixed-rate tick loop on top of tea.Tick.
//
// At most one tick is outstanding at any time. Stop is idempotent and a tick
// that arrives after Stop is dropped without rescheduling. A Scheduler is
// only touched from the Bubble Tea update loop and needs no locking.
type Scheduler struct {
	id       int64
	interval time.Duration
	running  bool
	pending  bool // A tick command is in flight
}

// NewScheduler creates a stopped scheduler firing tickRate times per second.
func NewScheduler(tickRate int) *Scheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Scheduler{
		id:       schedulerIDs.Add(1),
		interval: time.Second / time.Duration(tickRate),
	}
}

// Start resumes ticking. If a tick is already in flight it is reused and
// Start returns nil.
func (s *Scheduler) Start() tea.Cmd {
	s.running = true
	if s.pending {
		return nil
	}
	s.pending = true
	return s.tick()
}

// Stop halts ticking. Calling it on a stopped scheduler has no effect.
func (s *Scheduler) Stop() {
	s.running = false
}

// Accept consumes a tick message and reports whether it should be
// processed. Ticks from other schedulers and ticks arriving while stopped
// return false.
func (s *Scheduler) Accept(msg TickMsg) bool {
	if msg.ID != s.id {
		return false
	}
	s.pending = false
	return s.running
}

// Next schedules the following tick after an accepted one.
func (s *Scheduler) Next() tea.Cmd {
	if !s.running || s.pending {
		return nil
	}
	s.pending = true
	return s.tick()
}

// Running reports whether the scheduler is started.
func (s *Scheduler) Running() bool {
	return s.running
}

// Pending reports whether a tick is in flight.
func (s *Scheduler) Pending() bool {
	return s.pending
}

func (s *Scheduler) tick() tea.Cmd {
	id := s.id
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

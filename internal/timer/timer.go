package timer

import (
	"time"

	"overtime_tui/internal/clock"
)

// State is a copy of the timer's record at one instant.
type State struct {
	Running   bool
	Baseline  time.Duration
	Displayed time.Duration
	StartedAt *time.Time
}

// Period is one uninterrupted running stretch, closed by a single
// clock reading.
type Period struct {
	StartedAt time.Time
	StoppedAt time.Time
	// Remaining is the baseline the timer was left at.
	Remaining time.Duration
}

func (p Period) Elapsed() time.Duration { return p.StoppedAt.Sub(p.StartedAt) }

// Timer counts down from a start duration and keeps going below zero.
// While running, the displayed value is derived from the baseline and
// the clock reading taken at Start, never accumulated tick by tick.
type Timer struct {
	clock     clock.Clock
	start     time.Duration
	baseline  time.Duration
	displayed time.Duration
	running   bool
	startedAt *time.Time
}

func New(c clock.Clock, start time.Duration) *Timer {
	return &Timer{
		clock:     c,
		start:     start,
		baseline:  start,
		displayed: start,
	}
}

// Start begins a running period. It reports false if the timer was
// already running.
func (t *Timer) Start() bool {
	if t.running {
		return false
	}

	now := t.clock.Now()
	t.startedAt = &now
	t.running = true
	return true
}

// Pause folds the elapsed running time into the baseline and returns
// the period that just ended. It reports false if the timer was not
// running.
func (t *Timer) Pause() (Period, bool) {
	if !t.running {
		return Period{}, false
	}

	p := Period{StartedAt: *t.startedAt, StoppedAt: t.clock.Now()}
	t.baseline -= p.Elapsed()
	t.displayed = t.baseline
	t.startedAt = nil
	t.running = false
	p.Remaining = t.baseline
	return p, true
}

// Toggle starts a paused timer or pauses a running one. When it
// pauses, it returns the ended period and true.
func (t *Timer) Toggle() (Period, bool) {
	if t.running {
		return t.Pause()
	}
	t.Start()
	return Period{}, false
}

func (t *Timer) Reset() {
	t.running = false
	t.startedAt = nil
	t.baseline = t.start
	t.displayed = t.start
}

// Tick recomputes the displayed value from the clock. It does nothing
// while paused.
func (t *Timer) Tick() time.Duration {
	if t.running {
		t.displayed = t.baseline - t.clock.Now().Sub(*t.startedAt)
	}
	return t.displayed
}

func (t *Timer) Running() bool { return t.running }

func (t *Timer) Baseline() time.Duration { return t.baseline }

func (t *Timer) Displayed() time.Duration { return t.displayed }

func (t *Timer) StartDuration() time.Duration { return t.start }

func (t *Timer) StartedAt() (time.Time, bool) {
	if t.startedAt == nil {
		return time.Time{}, false
	}
	return *t.startedAt, true
}

func (t *Timer) Snapshot() State {
	s := State{
		Running:   t.running,
		Baseline:  t.baseline,
		Displayed: t.displayed,
	}
	if t.startedAt != nil {
		at := *t.startedAt
		s.StartedAt = &at
	}
	return s
}

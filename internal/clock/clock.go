// Package clock abstracts clock readings so the timer can be driven
// deterministically in tests.
package clock

import (
	"sync"
	"time"
)

// Clock returns the current time. Readings from Real carry the
// monotonic component, so differences between two readings are immune
// to wall-clock adjustments.
type Clock interface {
	Now() time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Fake returns a FakeClock stopped at the given time. Time only moves
// when Advance is called, or on every reading once a step is set.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a manually driven Clock for tests.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *FakeClock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

// SetStep makes every later reading move the clock forward by d, so
// two readings never agree. Zero stops the clock again.
func (c *FakeClock) SetStep(d time.Duration) {
	if d < 0 {
		return
	}
	c.mu.Lock()
	c.step = d
	c.mu.Unlock()
}

package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overtime_tui/internal/clock"
)

const startDuration = 10 * time.Minute

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTimer() (*Timer, *clock.FakeClock) {
	c := clock.Fake(epoch)
	return New(c, startDuration), c
}

// requireConsistent checks that startedAt is set exactly while running.
func requireConsistent(t *testing.T, tm *Timer) {
	t.Helper()
	_, ok := tm.StartedAt()
	require.Equal(t, tm.Running(), ok)
}

func TestNew_InitialState(t *testing.T) {
	t.Parallel()

	tm, _ := newTimer()
	assert.False(t, tm.Running())
	assert.Equal(t, startDuration, tm.Baseline())
	assert.Equal(t, startDuration, tm.Displayed())
	assert.Equal(t, startDuration, tm.StartDuration())
	requireConsistent(t, tm)
}

func TestStart_Idempotent(t *testing.T) {
	t.Parallel()

	tm, c := newTimer()
	require.True(t, tm.Start())
	c.Advance(3 * time.Second)
	tm.Tick()

	before := tm.Snapshot()
	assert.False(t, tm.Start(), "second start must be ignored")
	after := tm.Snapshot()

	assert.Equal(t, before.Baseline, after.Baseline)
	assert.Equal(t, before.Displayed, after.Displayed)
	require.NotNil(t, after.StartedAt)
	assert.True(t, after.StartedAt.Equal(epoch), "start timestamp must not be replaced")
	requireConsistent(t, tm)
}

func TestPause_Idempotent(t *testing.T) {
	t.Parallel()

	tm, c := newTimer()
	tm.Start()
	c.Advance(90 * time.Second)
	_, ok := tm.Pause()
	require.True(t, ok)

	before := tm.Snapshot()
	c.Advance(time.Minute)
	_, ok = tm.Pause()
	assert.False(t, ok)
	after := tm.Snapshot()

	assert.Equal(t, before, after)
	assert.Equal(t, startDuration-90*time.Second, tm.Baseline())
	assert.Equal(t, tm.Baseline(), tm.Displayed())
	requireConsistent(t, tm)
}

func TestStartPause_ZeroElapsed(t *testing.T) {
	t.Parallel()

	tm, _ := newTimer()
	tm.Start()
	tm.Pause()
	assert.Equal(t, startDuration, tm.Baseline())
	assert.Equal(t, startDuration, tm.Displayed())
}

func TestTick_DerivesFromClock(t *testing.T) {
	t.Parallel()

	tm, c := newTimer()
	assert.Equal(t, startDuration, tm.Tick(), "tick while paused is a no-op")

	tm.Start()
	c.Advance(2500 * time.Millisecond)
	assert.Equal(t, startDuration-2500*time.Millisecond, tm.Tick())

	// Baseline only moves on pause.
	assert.Equal(t, startDuration, tm.Baseline())
}

func TestPauseResume_AccumulatesAcrossCycles(t *testing.T) {
	t.Parallel()

	tm, c := newTimer()
	for range 3 {
		tm.Start()
		c.Advance(20 * time.Second)
		tm.Pause()
		c.Advance(time.Hour) // paused time never counts
	}
	assert.Equal(t, startDuration-time.Minute, tm.Displayed())
}

func TestPause_ReturnsEndedPeriod(t *testing.T) {
	t.Parallel()

	tm, c := newTimer()
	tm.Start()
	c.Advance(40 * time.Second)
	c.SetStep(time.Millisecond)

	p, ok := tm.Pause()
	require.True(t, ok)
	assert.True(t, p.StartedAt.Equal(epoch))
	assert.Equal(t, p.StartedAt.Add(p.Elapsed()), p.StoppedAt)
	assert.Equal(t, startDuration-p.Elapsed(), p.Remaining)
	assert.Equal(t, tm.Baseline(), p.Remaining, "the period and the paused state share one reading")
	assert.Equal(t, tm.Displayed(), p.Remaining)
}

func TestTick_RunsIntoOvertime(t *testing.T) {
	t.Parallel()

	tm, c := newTimer()
	tm.Start()
	c.Advance(startDuration + 1500*time.Millisecond)
	assert.Equal(t, -1500*time.Millisecond, tm.Tick())
}

func TestToggle(t *testing.T) {
	t.Parallel()

	tm, c := newTimer()
	_, paused := tm.Toggle()
	assert.False(t, paused)
	assert.True(t, tm.Running())

	c.Advance(time.Second)
	p, paused := tm.Toggle()
	assert.True(t, paused)
	assert.False(t, tm.Running())
	assert.Equal(t, time.Second, p.Elapsed())
	assert.Equal(t, startDuration-time.Second, tm.Displayed())
	requireConsistent(t, tm)
}

func TestReset_FromAnyState(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		prepare func(*Timer, *clock.FakeClock)
	}{
		{"fresh", func(*Timer, *clock.FakeClock) {}},
		{"running", func(tm *Timer, c *clock.FakeClock) {
			tm.Start()
			c.Advance(time.Minute)
			tm.Tick()
		}},
		{"paused", func(tm *Timer, c *clock.FakeClock) {
			tm.Start()
			c.Advance(time.Minute)
			tm.Pause()
		}},
		{"overtime", func(tm *Timer, c *clock.FakeClock) {
			tm.Start()
			c.Advance(15 * time.Minute)
			tm.Tick()
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tm, c := newTimer()
			tc.prepare(tm, c)
			tm.Reset()

			assert.False(t, tm.Running())
			assert.Equal(t, startDuration, tm.Displayed())
			assert.Equal(t, startDuration, tm.Baseline())
			requireConsistent(t, tm)
		})
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	t.Parallel()

	tm, c := newTimer()
	tm.Start()
	s := tm.Snapshot()
	require.NotNil(t, s.StartedAt)

	*s.StartedAt = epoch.Add(time.Hour)
	c.Advance(time.Second)
	assert.Equal(t, startDuration-time.Second, tm.Tick())
}

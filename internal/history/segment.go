package history

import "time"

// Segment records one uninterrupted running period of the timer.
type Segment struct {
	ID        int64
	SessionID string
	StartedAt time.Time
	StoppedAt time.Time
	// Elapsed is measured on the monotonic clock and may differ from
	// StoppedAt - StartedAt if the wall clock moved.
	Elapsed time.Duration
	// RemainingAfter is the remaining time when the period ended,
	// negative when it ended in overtime.
	RemainingAfter time.Duration
}

func (s Segment) Overtime() bool {
	return s.RemainingAfter < 0
}

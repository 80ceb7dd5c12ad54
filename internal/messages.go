package internal

import "time"

// frameInterval paces the redraw loop at Bubble Tea's default render
// rate.
const frameInterval = time.Second / 60

// frameMsg asks the model to recompute the displayed time. seq ties
// the frame to the running period that scheduled it; frames from an
// earlier period are dropped.
type frameMsg struct {
	seq int
}

package history

import (
	"github.com/google/uuid"

	"overtime_tui/internal/timer"
)

// Recorder groups segments into sessions and writes them to a
// Repository. A Recorder without a repository records nothing, which
// is how the log is switched off.
type Recorder struct {
	repo      *Repository
	sessionID string
}

func NewRecorder(repo *Repository) *Recorder {
	return &Recorder{
		repo:      repo,
		sessionID: uuid.NewString(),
	}
}

func (r *Recorder) Enabled() bool {
	return r != nil && r.repo != nil
}

func (r *Recorder) SessionID() string {
	return r.sessionID
}

// NewSession starts a fresh session; later segments get its ID.
func (r *Recorder) NewSession() string {
	r.sessionID = uuid.NewString()
	return r.sessionID
}

// Record stores an ended running period under the current session.
// It returns nil without error when the log is disabled.
func (r *Recorder) Record(p timer.Period) (*Segment, error) {
	if !r.Enabled() {
		return nil, nil
	}

	s := &Segment{
		SessionID:      r.sessionID,
		StartedAt:      p.StartedAt,
		StoppedAt:      p.StoppedAt,
		Elapsed:        p.Elapsed(),
		RemainingAfter: p.Remaining,
	}
	if err := r.repo.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying repository, if any.
func (r *Recorder) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.repo.Close()
}

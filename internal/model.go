package internal

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"overtime_tui/internal/clock"
	"overtime_tui/internal/config"
	"overtime_tui/internal/display"
	"overtime_tui/internal/history"
	"overtime_tui/internal/timer"
)

type Model struct {
	Timer   *timer.Timer
	Warning time.Duration

	Width    int
	Height   int
	ShowHelp bool

	scaler   display.Autoscaler
	keys     keyMap
	help     help.Model
	recorder *history.Recorder
	log      logrus.FieldLogger

	// frameSeq is bumped whenever the frame loop must stop; in-flight
	// frames carrying an older value are ignored.
	frameSeq int
	quitting bool
}

func NewModel(cfg *config.Config, c clock.Clock, recorder *history.Recorder, log logrus.FieldLogger) *Model {
	if recorder == nil {
		recorder = history.NewRecorder(nil)
	}
	m := &Model{
		Timer:    timer.New(c, cfg.StartDuration),
		Warning:  cfg.WarningThreshold,
		keys:     newKeyMap(),
		help:     help.New(),
		recorder: recorder,
		log:      log,
	}
	m.syncText()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.seq != m.frameSeq || !m.Timer.Running() {
			return m, nil
		}
		m.Timer.Tick()
		m.syncText()
		return m, m.nextFrame()
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.help.Width = msg.Width
		shell := m.layout().shell
		m.scaler.Observe(shell.Width, shell.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}
	return m, nil
}

// State is the visual state for the current displayed value.
func (m *Model) State() display.State {
	return display.Classify(m.Timer.Displayed(), m.Warning)
}

// Text is the formatted time currently on screen.
func (m *Model) Text() string {
	return display.Format(m.Timer.Displayed(), true)
}

func (m *Model) SessionID() string {
	return m.recorder.SessionID()
}

// ToggleRunning starts or pauses the timer and returns the command
// that drives the frame loop, if any.
func (m *Model) ToggleRunning() tea.Cmd {
	period, paused := m.Timer.Toggle()
	m.frameSeq++
	if paused {
		m.endSegment(period)
		m.syncText()
		m.logState().Debug("timer paused")
		return nil
	}

	m.logState().Debug("timer started")
	return m.nextFrame()
}

func (m *Model) ResetTimer() {
	if period, ok := m.Timer.Pause(); ok {
		m.endSegment(period)
	}
	m.Timer.Reset()
	m.frameSeq++
	m.syncText()
	session := m.recorder.NewSession()
	m.logState().WithField("session", session).Debug("timer reset")
}

// Close stops the frame loop, logs a running period that is cut short
// and releases the history log.
func (m *Model) Close() error {
	if period, ok := m.Timer.Pause(); ok {
		m.endSegment(period)
	}
	m.frameSeq++
	return m.recorder.Close()
}

func (m *Model) nextFrame() tea.Cmd {
	seq := m.frameSeq
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}

// syncText hands the current text to the autoscaler, which rescales
// when its length changed.
func (m *Model) syncText() {
	m.scaler.SetText(m.Text())
}

// endSegment writes a running period the timer just left.
func (m *Model) endSegment(p timer.Period) {
	segment, err := m.recorder.Record(p)
	if err != nil {
		m.log.WithError(err).Warn("failed to record timer segment")
		return
	}
	if segment != nil {
		m.log.WithFields(logrus.Fields{
			"segment": segment.ID,
			"elapsed": segment.Elapsed,
		}).Debug("timer segment recorded")
	}
}

func (m *Model) logState() logrus.FieldLogger {
	s := m.Timer.Snapshot()
	return m.log.WithFields(logrus.Fields{
		"running":   s.Running,
		"remaining": s.Baseline,
		"displayed": s.Displayed,
	})
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.frameSeq++
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		return m, m.ToggleRunning()
	case key.Matches(msg, m.keys.Reset):
		m.ResetTimer()
	case key.Matches(msg, m.keys.Help):
		m.ShowHelp = !m.ShowHelp
		m.help.ShowAll = m.ShowHelp
		shell := m.layout().shell
		m.scaler.Observe(shell.Width, shell.Height)
	}
	return m, nil
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch m.buttonAt(msg.X, msg.Y) {
	case buttonToggle:
		return m, m.ToggleRunning()
	case buttonReset:
		m.ResetTimer()
	}
	return m, nil
}

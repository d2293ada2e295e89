package live

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"kviz/internal/session"
)

// Options configures the live UI model.
type Options struct {
	NoColor     bool
	AllowReplay bool
	Logger      *zap.Logger
}

// Model is the Bubble Tea model for an interactive quiz. It owns the session
// and drives it from key presses.
type Model struct {
	session  *session.Session
	state    State
	keys     keyMap
	help     help.Model
	progress progress.Model
	opts     Options
	logger   *zap.Logger
	quitting bool
	aborted  bool
}

// NewModel starts the first run of s and presents its first question.
func NewModel(s *session.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	bar := []progress.Option{progress.WithWidth(40)}
	if opts.NoColor {
		bar = append(bar, progress.WithFillCharacters('#', '.'), progress.WithoutPercentage())
	} else {
		bar = append(bar, progress.WithDefaultGradient())
	}
	m := Model{
		session:  s,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: progress.New(bar...),
		opts:     opts,
		logger:   logger.With(zap.String("session_id", s.ID())),
	}
	m.state = startRun(m.state, s)
	m.logPhase()
	return m
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Scores returns the final score of every completed run.
func (m Model) Scores() []session.Score {
	return m.state.Scores
}

// Aborted reports whether the user quit in the middle of a run.
func (m Model) Aborted() bool {
	return m.aborted
}

// Init has no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		m.progress.Width = max(min(typed.Width-4, 60), 10)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Abort) {
		m.quitting = true
		m.aborted = m.state.Phase != PhaseSummary
		if m.aborted {
			m.logger.Info("run aborted", zap.Int("run", m.state.Run), zap.Int("answered", m.session.Answered()))
		}
		return m, tea.Quit
	}
	before := m.state.Phase
	switch m.state.Phase {
	case PhaseQuestion:
		switch {
		case key.Matches(msg, m.keys.Answer) && len(msg.Runes) == 1:
			m.state = typeLetter(m.state, m.session, msg.Runes[0])
		case key.Matches(msg, m.keys.Erase):
			m.state = eraseLetter(m.state)
		case key.Matches(msg, m.keys.Submit):
			m.state = submit(m.state, m.session)
		}
	case PhaseFeedback:
		if key.Matches(msg, m.keys.Next) {
			m.state = presentNext(m.state, m.session)
		}
	case PhaseSummary:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case m.opts.AllowReplay && key.Matches(msg, m.keys.Replay):
			m.state = startRun(m.state, m.session)
		}
	}
	if m.state.Phase != before {
		m.logPhase()
	}
	return m, nil
}

func (m Model) logPhase() {
	switch m.state.Phase {
	case PhaseQuestion:
		m.logger.Debug("question presented", zap.Int("run", m.state.Run), zap.Int("number", m.state.Question.Number))
	case PhaseFeedback:
		m.logger.Debug("answer evaluated", zap.Int("number", m.state.Result.Number), zap.Bool("correct", m.state.Result.Correct))
	case PhaseSummary:
		m.logger.Info("run complete",
			zap.Int("run", m.state.Run),
			zap.Int("correct", m.state.Score.Correct),
			zap.Int("total", m.state.Score.Total),
		)
	}
}

// View renders the live UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := renderHeader(m.state, m.progress.ViewAs(m.completion()), m.opts.NoColor)
	var body string
	switch m.state.Phase {
	case PhaseQuestion:
		body = renderQuestion(m.state, m.opts.NoColor)
	case PhaseFeedback:
		body = lipgloss.JoinVertical(lipgloss.Left, renderQuestion(m.state, m.opts.NoColor), renderFeedback(m.state.Result, m.opts.NoColor))
	default:
		body = renderSummary(m.state, m.opts.NoColor)
	}
	keys := m.keys.forPhase(m.state.Phase, len(m.state.Question.Answers) > 26, m.opts.AllowReplay)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", m.help.View(keys)) + "\n"
}

// completion returns the share of the run already answered.
func (m Model) completion() float64 {
	total := m.state.Score.Total
	if total == 0 {
		return 1
	}
	return float64(m.session.Answered()) / float64(total)
}

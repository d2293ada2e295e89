package live

import "kviz/internal/session"

// Phase is the screen the live UI is showing.
type Phase int

const (
	// PhaseQuestion waits for an answer to the presented question.
	PhaseQuestion Phase = iota
	// PhaseFeedback shows the evaluation of the last answer.
	PhaseFeedback
	// PhaseSummary shows the final score of a run.
	PhaseSummary
)

// String returns a short name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseQuestion:
		return "question"
	case PhaseFeedback:
		return "feedback"
	case PhaseSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// State captures what the live UI renders.
type State struct {
	Phase    Phase
	Run      int
	Question session.Presented
	Result   session.Result
	Input    string
	Score    session.Score
	Scores   []session.Score
}

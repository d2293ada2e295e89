package live

import (
	"strings"

	"kviz/internal/session"
)

// startRun begins a fresh run and presents its first question.
func startRun(state State, s *session.Session) State {
	s.Start()
	state.Run++
	state.Score = s.Score()
	return presentNext(state, s)
}

// presentNext moves to the next question or to the summary.
func presentNext(state State, s *session.Session) State {
	state.Input = ""
	presented, ok := s.PresentNext()
	if !ok {
		score, _ := s.FinalScore()
		state.Phase = PhaseSummary
		state.Score = score
		state.Scores = append(state.Scores, score)
		return state
	}
	state.Phase = PhaseQuestion
	state.Question = presented
	state.Result = session.Result{}
	return state
}

// typeLetter appends a letter to the pending answer. With at most 26 answers
// a single letter is submitted immediately.
func typeLetter(state State, s *session.Session, r rune) State {
	if state.Phase != PhaseQuestion {
		return state
	}
	state.Input += strings.ToUpper(string(r))
	if len(state.Question.Answers) <= 26 || len(state.Input) >= len(lastLetter(state.Question)) {
		return submit(state, s)
	}
	return state
}

// eraseLetter removes the last typed letter.
func eraseLetter(state State) State {
	if state.Phase == PhaseQuestion && state.Input != "" {
		state.Input = state.Input[:len(state.Input)-1]
	}
	return state
}

// submit evaluates the typed answer. An empty or unknown code is wrong.
func submit(state State, s *session.Session) State {
	if state.Phase != PhaseQuestion {
		return state
	}
	result, err := s.Submit(state.Input)
	if err != nil {
		return state
	}
	state.Phase = PhaseFeedback
	state.Result = result
	state.Score = s.Score()
	return state
}

func lastLetter(q session.Presented) string {
	letters := q.Letters()
	if len(letters) == 0 {
		return ""
	}
	return letters[len(letters)-1]
}

package live

import (
	"testing"

	"kviz/internal/question"
	"kviz/internal/session"
)

func TestStartRunResetsInput(t *testing.T) {
	s := session.New(liveBank(), session.WithSeed(2))
	state := startRun(State{Input: "AB", Scores: []session.Score{{Correct: 1, Total: 2}}}, s)
	if state.Run != 1 || state.Input != "" || state.Phase != PhaseQuestion {
		t.Fatalf("unexpected state %+v", state)
	}
	if len(state.Scores) != 1 {
		t.Fatalf("expected earlier scores to be kept, got %+v", state.Scores)
	}
}

func TestSubmitEmptyInputIsWrong(t *testing.T) {
	s := session.New(liveBank())
	state := presentNext(State{}, s)
	state = submit(state, s)
	if state.Phase != PhaseFeedback || state.Result.Correct || state.Result.Selected != -1 {
		t.Fatalf("unexpected state %+v", state)
	}
	if state.Score.Total != 2 || state.Score.Correct != 0 {
		t.Fatalf("unexpected score %+v", state.Score)
	}
}

func TestTypeLetterOutsideQuestionPhase(t *testing.T) {
	s := session.New(liveBank())
	state := State{Phase: PhaseSummary}
	if got := typeLetter(state, s, 'a'); got.Input != "" || got.Phase != PhaseSummary {
		t.Fatalf("expected no change, got %+v", got)
	}
	if got := eraseLetter(State{Phase: PhaseFeedback, Input: "A"}); got.Input != "A" {
		t.Fatalf("expected input to be kept, got %q", got.Input)
	}
}

func TestPresentNextAppendsFinalScore(t *testing.T) {
	bank := question.Bank{Questions: []question.Question{{Prompt: "Q", Answers: []string{"x"}, CorrectIndex: 0}}}
	s := session.New(bank)
	state := presentNext(State{Run: 1}, s)
	state = typeLetter(state, s, 'a')
	if !state.Result.Correct {
		t.Fatalf("expected correct answer, got %+v", state.Result)
	}
	state = presentNext(state, s)
	if state.Phase != PhaseSummary || len(state.Scores) != 1 || state.Scores[0] != (session.Score{Correct: 1, Total: 1}) {
		t.Fatalf("unexpected summary state %+v", state)
	}
}

func TestLastLetter(t *testing.T) {
	if got := lastLetter(session.Presented{}); got != "" {
		t.Fatalf("expected empty letter, got %q", got)
	}
	q := session.Presented{Answers: make([]string, 27)}
	if got := lastLetter(q); got != "AA" {
		t.Fatalf("expected AA, got %q", got)
	}
}

func TestPhaseString(t *testing.T) {
	cases := map[Phase]string{PhaseQuestion: "question", PhaseFeedback: "feedback", PhaseSummary: "summary"}
	for phase, want := range cases {
		if got := phase.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

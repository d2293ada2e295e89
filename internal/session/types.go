package session

import (
	"errors"

	"kviz/internal/question"
)

// ErrNoPendingQuestion is returned when an answer is submitted without a
// question awaiting one.
var ErrNoPendingQuestion = errors.New("no question is awaiting an answer")

// Presented is one presentation of a question with its answers shuffled.
// Answers[i] is the original answer at Permutation[i].
type Presented struct {
	Number      int
	Total       int
	Prompt      string
	Answers     []string
	Permutation []int

	correctPosition int
}

// CorrectPosition returns the display position of the correct answer.
func (p Presented) CorrectPosition() int {
	return p.correctPosition
}

// Letters returns the letter code for each display position.
func (p Presented) Letters() []string {
	letters := make([]string, len(p.Answers))
	for i := range p.Answers {
		letters[i] = mustLetter(i)
	}
	return letters
}

// RenderedPrompt returns the prompt with line break escapes expanded.
func (p Presented) RenderedPrompt() string {
	return question.RenderPrompt(p.Prompt)
}

// Result is the evaluation of one submitted answer.
type Result struct {
	Number          int
	Correct         bool
	Selected        int
	CorrectPosition int
	CorrectAnswer   string
	CorrectLetter   string
}

// Score is the running or final tally of a session.
type Score struct {
	Correct int
	Total   int
}

// Percent returns the share of correct answers as a percentage.
func (s Score) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) * 100 / float64(s.Total)
}

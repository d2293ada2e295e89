// Package session runs one pass over a question bank: it fixes a random
// question order, shuffles each question's answers on presentation, and keeps
// score. A Session is not safe for concurrent use.
package session

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"kviz/internal/question"
)

// Session is the state machine for a single quiz run.
type Session struct {
	id       string
	bank     question.Bank
	rng      *rand.Rand
	order    []int
	cursor   int
	pending  *Presented
	answered int
	correct  int
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for every shuffle.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSeed seeds a deterministic random source.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// New creates a session over bank and starts it. The bank is never modified.
func New(bank question.Bank, opts ...Option) *Session {
	s := &Session{
		id:   uuid.NewString(),
		bank: bank,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.Start()
	return s
}

// ID returns a unique identifier for log correlation.
func (s *Session) ID() string {
	return s.id
}

// Start draws a fresh question order and resets progress and score.
func (s *Session) Start() {
	s.order = s.rng.Perm(s.bank.Len())
	s.cursor = 0
	s.pending = nil
	s.answered = 0
	s.correct = 0
}

// PresentNext returns the next question with freshly shuffled answers, or
// false once every question has been presented. A question still awaiting an
// answer is abandoned: it counts as answered and scores as wrong.
func (s *Session) PresentNext() (Presented, bool) {
	if s.pending != nil {
		s.pending = nil
		s.answered++
	}
	if s.cursor >= len(s.order) {
		return Presented{}, false
	}
	q := s.bank.Question(s.order[s.cursor])
	s.cursor++

	perm := s.rng.Perm(len(q.Answers))
	answers := make([]string, len(perm))
	for pos, original := range perm {
		answers[pos] = q.Answers[original]
	}
	presented := Presented{
		Number:          s.cursor,
		Total:           len(s.order),
		Prompt:          q.Prompt,
		Answers:         answers,
		Permutation:     perm,
		correctPosition: indexOf(perm, q.CorrectIndex),
	}
	s.pending = &presented
	return presented, true
}

// indexOf is a linear scan, O(answers) per presentation.
func indexOf(perm []int, original int) int {
	for pos, value := range perm {
		if value == original {
			return pos
		}
	}
	return -1
}

// Submit evaluates a letter code for the pending question. Any token that
// does not name a display position counts as a wrong answer.
func (s *Session) Submit(token string) (Result, error) {
	pos, err := Position(token)
	if err != nil {
		pos = -1
	}
	return s.SubmitPosition(pos)
}

// SubmitPosition evaluates a display position for the pending question.
func (s *Session) SubmitPosition(pos int) (Result, error) {
	if s.pending == nil {
		return Result{}, ErrNoPendingQuestion
	}
	presented := *s.pending
	s.pending = nil

	if pos < 0 || pos >= len(presented.Answers) {
		pos = -1
	}
	correctPos := presented.correctPosition
	result := Result{
		Number:          presented.Number,
		Correct:         pos >= 0 && pos == correctPos,
		Selected:        pos,
		CorrectPosition: correctPos,
	}
	if correctPos >= 0 {
		result.CorrectAnswer = presented.Answers[correctPos]
		result.CorrectLetter = mustLetter(correctPos)
	}
	s.answered++
	if result.Correct {
		s.correct++
	}
	return result, nil
}

// Pending reports whether a presented question is awaiting an answer.
func (s *Session) Pending() bool {
	return s.pending != nil
}

// Answered returns how many questions have been answered in this run.
func (s *Session) Answered() int {
	return s.answered
}

// Done reports whether every question has been presented and answered.
func (s *Session) Done() bool {
	return s.pending == nil && s.cursor >= len(s.order)
}

// Score returns the running tally. Total is always the bank size.
func (s *Session) Score() Score {
	return Score{Correct: s.correct, Total: len(s.order)}
}

// FinalScore returns the tally once the run is complete.
func (s *Session) FinalScore() (Score, bool) {
	return s.Score(), s.Done()
}

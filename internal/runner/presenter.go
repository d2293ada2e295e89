package runner

import (
	"context"

	"kviz/internal/session"
)

// Presenter renders a quiz run and collects answers. Play drives it one
// question at a time.
type Presenter interface {
	// OnQuestion renders the prompt and the lettered answers.
	OnQuestion(q session.Presented) error
	// RequestAnswer returns one raw token for the presented question. Tokens
	// that do not name an answer are scored as wrong, never re-asked.
	RequestAnswer(ctx context.Context) (string, error)
	// OnResult reports the evaluation of the last answer.
	OnResult(result session.Result) error
	// OnSessionComplete reports the final tally.
	OnSessionComplete(score session.Score) error
}

// Asker decides whether another run over the same bank should start.
type Asker interface {
	AskReplay(ctx context.Context) (bool, error)
}

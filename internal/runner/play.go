package runner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kviz/internal/session"
)

// Params carries optional collaborators for Play and Replay.
type Params struct {
	Logger *zap.Logger
	// MaxRuns bounds Replay; zero means no limit.
	MaxRuns int
}

func (p Params) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// Play starts a fresh run of s and drives presenter until every question has
// been answered or ctx is cancelled.
func Play(ctx context.Context, s *session.Session, presenter Presenter, params Params) (session.Score, error) {
	if s == nil {
		return session.Score{}, fmt.Errorf("session is nil")
	}
	if presenter == nil {
		return session.Score{}, fmt.Errorf("presenter is nil")
	}
	logger := params.logger().With(zap.String("session_id", s.ID()))

	s.Start()
	logger.Debug("run started", zap.Int("questions", s.Score().Total))
	for {
		if err := ctx.Err(); err != nil {
			return s.Score(), err
		}
		presented, ok := s.PresentNext()
		if !ok {
			break
		}
		logger.Debug("question presented",
			zap.Int("number", presented.Number),
			zap.Int("answers", len(presented.Answers)),
		)
		if err := presenter.OnQuestion(presented); err != nil {
			return s.Score(), fmt.Errorf("present question %d: %w", presented.Number, err)
		}
		token, err := presenter.RequestAnswer(ctx)
		if err != nil {
			return s.Score(), fmt.Errorf("read answer %d: %w", presented.Number, err)
		}
		result, err := s.Submit(token)
		if err != nil {
			return s.Score(), fmt.Errorf("submit answer %d: %w", presented.Number, err)
		}
		logger.Debug("answer evaluated",
			zap.Int("number", result.Number),
			zap.Bool("correct", result.Correct),
			zap.Int("selected", result.Selected),
		)
		if err := presenter.OnResult(result); err != nil {
			return s.Score(), fmt.Errorf("report result %d: %w", result.Number, err)
		}
	}

	score, _ := s.FinalScore()
	logger.Info("run complete",
		zap.Int("correct", score.Correct),
		zap.Int("total", score.Total),
	)
	if err := presenter.OnSessionComplete(score); err != nil {
		return score, fmt.Errorf("report score: %w", err)
	}
	return score, nil
}

// Replay plays s repeatedly, reshuffling each time, for as long as ask agrees.
// A nil ask plays a single run.
func Replay(ctx context.Context, s *session.Session, presenter Presenter, ask Asker, params Params) ([]session.Score, error) {
	var scores []session.Score
	for {
		score, err := Play(ctx, s, presenter, params)
		if err != nil {
			return scores, err
		}
		scores = append(scores, score)
		if ask == nil || (params.MaxRuns > 0 && len(scores) >= params.MaxRuns) {
			return scores, nil
		}
		again, err := ask.AskReplay(ctx)
		if err != nil {
			return scores, fmt.Errorf("ask replay: %w", err)
		}
		if !again {
			return scores, nil
		}
		params.logger().Debug("replay requested", zap.Int("runs", len(scores)))
	}
}

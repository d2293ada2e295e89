package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"kviz/internal/question"
)

// TestQuizScenarios runs the bank and session feature scenarios.
func TestQuizScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "quiz-scenarios",
		ScenarioInitializer: initializeQuizScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{filepath.Join("testdata", "quiz.feature")},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

type quizScenarioState struct {
	text     string
	bank     question.Bank
	parseErr error
	session  *Session
}

func initializeQuizScenario(ctx *godog.ScenarioContext) {
	state := &quizScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = quizScenarioState{}
		return ctx, nil
	})

	ctx.Step(`^the bank text:$`, state.givenBankText)
	ctx.Step(`^I parse the bank$`, state.whenParse)
	ctx.Step(`^the bank has (\d+) questions?$`, state.thenQuestionCount)
	ctx.Step(`^question (\d+) has answers "([^"]*)"$`, state.thenAnswers)
	ctx.Step(`^question (\d+) has correct index (\d+)$`, state.thenCorrectIndex)
	ctx.Step(`^parsing fails with a format error$`, state.thenFormatError)
	ctx.Step(`^parsing fails with a format error mentioning "([^"]*)"$`, state.thenFormatErrorMentioning)
	ctx.Step(`^I start a session with seed (\d+)$`, state.whenStartSession)
	ctx.Step(`^I answer the next question with the (correct|wrong) letter$`, state.whenAnswer)
	ctx.Step(`^the final score is (\d+) out of (\d+)$`, state.thenFinalScore)
	ctx.Step(`^the session has no questions$`, state.thenNoQuestions)
}

func (s *quizScenarioState) givenBankText(doc *godog.DocString) error {
	s.text = doc.Content
	return nil
}

func (s *quizScenarioState) whenParse() error {
	s.bank, s.parseErr = question.ParseString(s.text)
	return nil
}

func (s *quizScenarioState) thenQuestionCount(count int) error {
	if s.parseErr != nil {
		return fmt.Errorf("unexpected parse error: %w", s.parseErr)
	}
	if s.bank.Len() != count {
		return fmt.Errorf("expected %d questions, got %d", count, s.bank.Len())
	}
	return nil
}

func (s *quizScenarioState) thenAnswers(number int, joined string) error {
	got := s.bank.Question(number - 1).Answers
	want := strings.Split(joined, "|")
	if !reflect.DeepEqual(got, want) {
		return fmt.Errorf("expected answers %v, got %v", want, got)
	}
	return nil
}

func (s *quizScenarioState) thenCorrectIndex(number, index int) error {
	if got := s.bank.Question(number - 1).CorrectIndex; got != index {
		return fmt.Errorf("expected correct index %d, got %d", index, got)
	}
	return nil
}

func (s *quizScenarioState) thenFormatError() error {
	if !errors.Is(s.parseErr, question.ErrFormat) {
		return fmt.Errorf("expected format error, got %v", s.parseErr)
	}
	return nil
}

func (s *quizScenarioState) thenFormatErrorMentioning(token string) error {
	if err := s.thenFormatError(); err != nil {
		return err
	}
	if !strings.Contains(s.parseErr.Error(), token) {
		return fmt.Errorf("expected %q in %q", token, s.parseErr.Error())
	}
	return nil
}

func (s *quizScenarioState) whenStartSession(seed int) error {
	if s.parseErr != nil {
		return fmt.Errorf("unexpected parse error: %w", s.parseErr)
	}
	s.session = New(s.bank, WithSeed(uint64(seed)))
	return nil
}

func (s *quizScenarioState) whenAnswer(choice string) error {
	presented, ok := s.session.PresentNext()
	if !ok {
		return fmt.Errorf("expected a question to be presented")
	}
	pos := presented.CorrectPosition()
	if choice == "wrong" {
		pos = (pos + 1) % len(presented.Answers)
	}
	letter, err := Letter(pos)
	if err != nil {
		return err
	}
	_, err = s.session.Submit(letter)
	return err
}

func (s *quizScenarioState) thenFinalScore(correct, total int) error {
	score, ok := s.session.FinalScore()
	if !ok {
		return fmt.Errorf("session is not complete")
	}
	if score.Correct != correct || score.Total != total {
		return fmt.Errorf("expected %d/%d, got %d/%d", correct, total, score.Correct, score.Total)
	}
	return nil
}

func (s *quizScenarioState) thenNoQuestions() error {
	if _, ok := s.session.PresentNext(); ok {
		return fmt.Errorf("expected end of session on first presentation")
	}
	return nil
}

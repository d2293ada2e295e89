package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kviz/internal/session"
)

// ConsoleOptions configures the plain console presenter.
type ConsoleOptions struct {
	NoColor bool
}

// Console is a line-oriented Presenter over a reader and a writer.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	noColor bool
	eof     bool
}

// NewConsole creates a console presenter reading answers from in.
func NewConsole(in io.Reader, out io.Writer, opts ConsoleOptions) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		noColor: opts.NoColor,
	}
}

// OnQuestion prints the prompt and the lettered answers.
func (c *Console) OnQuestion(q session.Presented) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s %s\n\n", c.style(fmt.Sprintf("Question %d/%d:", q.Number, q.Total), lipgloss.Color("33")), q.RenderedPrompt())
	for i, letter := range q.Letters() {
		fmt.Fprintf(&sb, "  %s. %s\n", letter, q.Answers[i])
	}
	sb.WriteString("\nYour answer (letter): ")
	_, err := io.WriteString(c.out, sb.String())
	return err
}

// RequestAnswer reads one line. End of input yields an empty token.
func (c *Console) RequestAnswer(ctx context.Context) (string, error) {
	return c.readLine(ctx)
}

// OnResult prints per-question feedback.
func (c *Console) OnResult(result session.Result) error {
	var line string
	if result.Correct {
		line = c.style("Correct!", lipgloss.Color("42"))
	} else {
		line = c.style("Incorrect.", lipgloss.Color("196")) +
			fmt.Sprintf(" The correct answer: %s (%s)", result.CorrectAnswer, result.CorrectLetter)
	}
	_, err := fmt.Fprintln(c.out, line)
	return err
}

// OnSessionComplete prints the final tally.
func (c *Console) OnSessionComplete(score session.Score) error {
	_, err := fmt.Fprintf(c.out, "\n%s %d/%d\n", c.style("Quiz over! Your score:", lipgloss.Color("33")), score.Correct, score.Total)
	return err
}

// AskReplay asks whether to play again. Only an explicit yes continues.
func (c *Console) AskReplay(ctx context.Context) (bool, error) {
	if _, err := io.WriteString(c.out, "Play again? (y/N): "); err != nil {
		return false, err
	}
	answer, err := c.readLine(ctx)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "i", "igen":
		return true, nil
	default:
		return false, nil
	}
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.eof {
		return "", nil
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		c.eof = true
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) style(text string, color lipgloss.Color) string {
	if c.noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}

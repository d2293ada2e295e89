package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kviz/internal/session"
)

var (
	colorHeader    = lipgloss.Color("33")
	colorMuted     = lipgloss.Color("242")
	colorCorrect   = lipgloss.Color("42")
	colorIncorrect = lipgloss.Color("196")
	colorSelected  = lipgloss.Color("214")
)

// renderHeader renders the run and progress line.
func renderHeader(state State, bar string, noColor bool) string {
	line := fmt.Sprintf("Run %d", state.Run)
	if state.Phase != PhaseSummary && state.Question.Total > 0 {
		line += fmt.Sprintf(" | Question %d/%d", state.Question.Number, state.Question.Total)
	}
	line += fmt.Sprintf(" | Score %d", state.Score.Correct)
	return lipgloss.JoinVertical(lipgloss.Left, stylize(line, noColor, colorHeader, true), bar)
}

// renderQuestion renders the prompt and lettered answers.
func renderQuestion(state State, noColor bool) string {
	q := state.Question
	var b strings.Builder
	b.WriteString(stylize(q.RenderedPrompt(), noColor, "", true))
	b.WriteString("\n\n")
	letters := q.Letters()
	for i, answer := range q.Answers {
		line := fmt.Sprintf("  %s. %s", letters[i], answer)
		if state.Phase == PhaseFeedback {
			switch {
			case i == state.Result.CorrectPosition:
				line = stylize(line+"  ✓", noColor, colorCorrect, true)
			case i == state.Result.Selected:
				line = stylize(line+"  ✗", noColor, colorIncorrect, false)
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if state.Phase == PhaseQuestion && state.Input != "" {
		b.WriteString("\n")
		b.WriteString(stylize("Answer: "+state.Input, noColor, colorSelected, false))
		b.WriteString("\n")
	}
	return b.String()
}

// renderFeedback renders the evaluation line.
func renderFeedback(result session.Result, noColor bool) string {
	if result.Correct {
		return stylize("Correct!", noColor, colorCorrect, true)
	}
	return stylize("Incorrect.", noColor, colorIncorrect, true) +
		fmt.Sprintf(" The correct answer: %s (%s)", result.CorrectAnswer, result.CorrectLetter)
}

// renderSummary renders the final tally and earlier runs.
func renderSummary(state State, noColor bool) string {
	line := fmt.Sprintf("Quiz over! Your score: %d/%d", state.Score.Correct, state.Score.Total)
	if state.Score.Total > 0 {
		line += fmt.Sprintf(" (%.0f%%)", state.Score.Percent())
	}
	parts := []string{stylize(line, noColor, colorHeader, true)}
	if len(state.Scores) > 1 {
		runs := make([]string, 0, len(state.Scores))
		for i, score := range state.Scores {
			runs = append(runs, fmt.Sprintf("#%d %d/%d", i+1, score.Correct, score.Total))
		}
		parts = append(parts, stylize("Runs: "+strings.Join(runs, "  "), noColor, colorMuted, false))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color, bold bool) string {
	if noColor {
		return text
	}
	style := lipgloss.NewStyle().Bold(bold)
	if color != "" {
		style = style.Foreground(color)
	}
	return style.Render(text)
}

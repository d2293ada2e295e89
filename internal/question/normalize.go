package question

import "strings"

// lineBreakEscape is the two-character sequence a prompt uses for a forced line break.
const lineBreakEscape = `\n`

// RenderPrompt expands line break escapes in a prompt for display.
func RenderPrompt(prompt string) string {
	return strings.ReplaceAll(prompt, lineBreakEscape, "\n")
}

func normalizeQuestions(questions []Question) []Question {
	normalized := make([]Question, 0, len(questions))
	for _, q := range questions {
		normalized = append(normalized, Question{
			Prompt:       strings.TrimSpace(q.Prompt),
			Answers:      normalizeStringSlice(q.Answers),
			CorrectIndex: q.CorrectIndex,
		})
	}
	return normalized
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}

package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a structured bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

// Is reports whether target is ErrFormat.
func (err *ValidationError) Is(target error) bool {
	return target == ErrFormat
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// ValidateDocument checks the version and every question of a structured bank.
func ValidateDocument(doc Document) error {
	collector := &issueCollector{}
	validateVersion(collector, doc.Version)
	validateQuestions(collector, doc.Questions, nil)
	return collector.result()
}

func validateVersion(collector *issueCollector, version int) {
	if version == 0 {
		collector.add("version", "is required")
	} else if version != DocumentVersion {
		collector.add("version", fmt.Sprintf("unsupported version %d", version))
	}
}

// ValidateBank checks that every question can be written in the text format
// and read back unchanged.
func ValidateBank(bank Bank) error {
	collector := &issueCollector{}
	validateQuestions(collector, bank.Questions, nil)
	return collector.result()
}

// validateQuestions collects issues for every question. hasCorrect, when not
// nil, marks which questions carried an explicit correct index.
func validateQuestions(collector *issueCollector, questions []Question, hasCorrect []bool) {
	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		prompt := strings.TrimSpace(q.Prompt)
		if prompt == "" {
			collector.add(prefix+".question", "is required")
		} else if strings.ContainsAny(prompt, "\r\n") {
			collector.add(prefix+".question", `must be a single line (use \n for line breaks)`)
		}

		if len(q.Answers) == 0 {
			collector.add(prefix+".answers", "must include at least one entry")
		}
		for answerIndex, answer := range q.Answers {
			field := fmt.Sprintf("%s.answers[%d]", prefix, answerIndex)
			trimmed := strings.TrimSpace(answer)
			switch {
			case trimmed == "":
				collector.add(field, "is required")
			case readsAsIndex(trimmed, answerIndex):
				collector.add(field, fmt.Sprintf("%q would be read as the correct index", trimmed))
			case strings.ContainsAny(trimmed, "\r\n"):
				collector.add(field, "must be a single line")
			}
		}

		switch {
		case hasCorrect != nil && !hasCorrect[i]:
			collector.add(prefix+".correct", "is required")
		case q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Answers):
			collector.add(prefix+".correct", fmt.Sprintf("index %d out of range [0, %d)", q.CorrectIndex, len(q.Answers)))
		}
	}
}

// readsAsIndex reports whether an answer at position pos would end the answer
// block when the bank is written in the text format.
func readsAsIndex(answer string, pos int) bool {
	value, err := parseIndex(answer)
	return err == nil && value >= 0 && value < pos
}

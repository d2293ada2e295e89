package question

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeBankFile(t *testing.T, name, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return path
}

// TestLoadFileText verifies text banks load from disk.
func TestLoadFileText(t *testing.T) {
	path := writeBankFile(t, "questions.txt", "Q?\nA\nB\n1\n")
	bank, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bank.Len() != 1 || bank.Question(0).Correct() != "B" {
		t.Fatalf("unexpected bank %+v", bank)
	}
}

// TestLoadFileMissing verifies a missing source reports ErrNotFound.
func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	_, err := LoadFile(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.Path != path {
		t.Fatalf("expected NotFoundError for %q, got %v", path, err)
	}
}

// TestLoadFileDirectory verifies an unreadable source reports ErrNotFound.
func TestLoadFileDirectory(t *testing.T) {
	_, err := LoadFile(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

// TestLoadFileYAML verifies YAML banks load and normalize properly.
func TestLoadFileYAML(t *testing.T) {
	path := writeBankFile(t, "questions.yml", `version: 1
questions:
  - question: "  What is 2+2? "
    answers: [" 3 ", "4", "5"]
    correct: 1
`)
	bank, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bank.Len() != 1 {
		t.Fatalf("expected 1 question, got %d", bank.Len())
	}
	q := bank.Question(0)
	if q.Prompt != "What is 2+2?" {
		t.Fatalf("expected trimmed prompt, got %q", q.Prompt)
	}
	if len(q.Answers) != 3 || q.Answers[0] != "3" || q.CorrectIndex != 1 {
		t.Fatalf("unexpected question: %+v", q)
	}
}

// TestLoadFileJSON verifies JSON banks are parsed and validated.
func TestLoadFileJSON(t *testing.T) {
	path := writeBankFile(t, "questions.json", `{
  "version": 1,
  "questions": [
    {"question": "Which color?", "answers": ["red", "blue"], "correct": 1}
  ]
}`)
	bank, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bank.Len() != 1 || bank.Question(0).Correct() != "blue" {
		t.Fatalf("unexpected bank: %+v", bank.Questions)
	}
}

// TestLoadFileYAMLUnknownField verifies unknown keys are rejected.
func TestLoadFileYAMLUnknownField(t *testing.T) {
	path := writeBankFile(t, "questions.yaml", `version: 1
questions:
  - question: Q
    answers: [a, b]
    correct: 0
    hint: nope
`)
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

// TestLoadFileValidationErrors verifies invalid structured banks collect every issue.
func TestLoadFileValidationErrors(t *testing.T) {
	path := writeBankFile(t, "questions.yml", `version: 2
questions:
  - question: ""
    answers: ["yes", ""]
    correct: 0
  - question: "Q2"
    answers: ["a", "0"]
    correct: 5
`)
	_, err := LoadFile(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := map[string]bool{}
	for _, issue := range validationErr.Issues {
		fields[issue.Field] = true
	}
	for _, field := range []string{
		"version",
		"questions[0].question",
		"questions[0].answers[1]",
		"questions[1].answers[1]",
		"questions[1].correct",
	} {
		if !fields[field] {
			t.Fatalf("expected issue for %s, got %+v", field, validationErr.Issues)
		}
	}
}

// TestLoadFileMissingCorrect verifies an absent correct key is an issue, not index 0.
func TestLoadFileMissingCorrect(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{name: "questions.yml", payload: "version: 1\nquestions:\n  - question: Q\n    answers: [a, b]\n"},
		{name: "questions.json", payload: `{"version": 1, "questions": [{"question": "Q", "answers": ["a", "b"]}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bank, err := LoadFile(writeBankFile(t, tc.name, tc.payload))
			if err == nil {
				t.Fatalf("expected missing correct index error, got bank %+v", bank)
			}
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("expected format error, got %v", err)
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(validationErr.Issues) != 1 || validationErr.Issues[0] != (Issue{Field: "questions[0].correct", Message: "is required"}) {
				t.Fatalf("unexpected issues %+v", validationErr.Issues)
			}
		})
	}
}

// TestLoadFileExplicitZeroCorrect verifies correct: 0 is still accepted.
func TestLoadFileExplicitZeroCorrect(t *testing.T) {
	path := writeBankFile(t, "questions.json", `{"version": 1, "questions": [{"question": "Q", "answers": ["a", "b"], "correct": 0}]}`)
	bank, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bank.Question(0).Correct() != "a" {
		t.Fatalf("unexpected bank %+v", bank)
	}
}

// TestLoadFileMalformedStructured verifies decoder failures match ErrFormat.
func TestLoadFileMalformedStructured(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{name: "broken.yml", payload: "version: 1\nquestions: [\n"},
		{name: "broken.json", payload: `{"version": 1, "questions": [`},
		{name: "unknown.yaml", payload: "version: 1\nextra: true\n"},
		{name: "twice.yml", payload: "version: 1\n---\nversion: 1\n"},
		{name: "twice.json", payload: `{"version": 1} {"version": 1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFile(writeBankFile(t, tc.name, tc.payload))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("expected format error, got %v", err)
			}
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected *FormatError, got %T", err)
			}
		})
	}
}

// TestFormatForPath verifies extension dispatch.
func TestFormatForPath(t *testing.T) {
	cases := map[string]string{
		"bank.txt":  FormatText,
		"bank":      FormatText,
		"bank.YML":  FormatYAML,
		"bank.yaml": FormatYAML,
		"bank.json": FormatJSON,
	}
	for path, want := range cases {
		if got := FormatForPath(path); got != want {
			t.Fatalf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

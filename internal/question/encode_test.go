package question

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleBank() Bank {
	return Bank{Questions: []Question{
		{Prompt: "2+2?", Answers: []string{"3", "4", "5"}, CorrectIndex: 1},
		{Prompt: `Two lines\nhere`, Answers: []string{"first", "second"}, CorrectIndex: 0},
		{Prompt: "Single", Answers: []string{"only"}, CorrectIndex: 0},
		{Prompt: "Years?", Answers: []string{"1999", "2000", "0 BC"}, CorrectIndex: 2},
	}}
}

// TestFormatRoundTrip verifies encoding and re-parsing yields the same bank.
func TestFormatRoundTrip(t *testing.T) {
	bank := sampleBank()
	text, err := Format(bank)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	parsed, err := ParseString(text)
	if err != nil {
		t.Fatalf("parse formatted bank: %v\n%s", err, text)
	}
	if !reflect.DeepEqual(parsed, bank) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", parsed, bank)
	}
	again, err := Format(parsed)
	if err != nil {
		t.Fatalf("format again: %v", err)
	}
	if again != text {
		t.Fatalf("formatting is not stable:\n%s\n---\n%s", text, again)
	}
}

// TestFormatLayout verifies the exact text layout.
func TestFormatLayout(t *testing.T) {
	text, err := Format(Bank{Questions: []Question{{Prompt: "Q?", Answers: []string{"A", "B"}, CorrectIndex: 1}}})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if text != "Q?\nA\nB\n1\n\n" {
		t.Fatalf("unexpected layout %q", text)
	}
}

// TestFormatRejectsAmbiguousAnswers verifies answers that would be misread are rejected.
func TestFormatRejectsAmbiguousAnswers(t *testing.T) {
	bank := Bank{Questions: []Question{{Prompt: "Q?", Answers: []string{"x", "0"}, CorrectIndex: 0}}}
	_, err := Format(bank)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
}

// TestEncodeAsStructuredRoundTrip verifies YAML and JSON encodings load back.
func TestEncodeAsStructuredRoundTrip(t *testing.T) {
	bank := sampleBank()
	for _, tc := range []struct {
		format string
		name   string
	}{
		{format: FormatYAML, name: "bank.yml"},
		{format: FormatJSON, name: "bank.json"},
		{format: FormatText, name: "bank.txt"},
	} {
		t.Run(tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodeAs(&buf, bank, tc.format); err != nil {
				t.Fatalf("encode: %v", err)
			}
			path := filepath.Join(t.TempDir(), tc.name)
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("load: %v\n%s", err, buf.String())
			}
			if !reflect.DeepEqual(loaded, bank) {
				t.Fatalf("mismatch:\n got %+v\nwant %+v", loaded, bank)
			}
		})
	}
}

// TestEncodeAsUnknownFormat verifies unsupported formats are rejected.
func TestEncodeAsUnknownFormat(t *testing.T) {
	if err := EncodeAs(&bytes.Buffer{}, sampleBank(), "xml"); err == nil {
		t.Fatalf("expected error")
	}
}

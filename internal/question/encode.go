package question

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Encode writes bank in the line-oriented text format. Each record is the
// prompt, the answers, the correct index and a blank separator line.
func Encode(w io.Writer, bank Bank) error {
	if err := ValidateBank(bank); err != nil {
		return err
	}
	buf := bufio.NewWriter(w)
	for _, q := range bank.Questions {
		fmt.Fprintln(buf, strings.TrimSpace(q.Prompt))
		for _, answer := range q.Answers {
			fmt.Fprintln(buf, strings.TrimSpace(answer))
		}
		fmt.Fprintln(buf, strconv.Itoa(q.CorrectIndex))
		fmt.Fprintln(buf)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("write question bank: %w", err)
	}
	return nil
}

// Format returns the text encoding of bank.
func Format(bank Bank) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, bank); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// EncodeAs writes bank in the named format (txt, yaml or json).
func EncodeAs(w io.Writer, bank Bank, format string) error {
	switch format {
	case FormatText:
		return Encode(w, bank)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(documentFor(bank)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(documentFor(bank)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported bank format %q (expected txt|yaml|json)", format)
	}
}

func documentFor(bank Bank) Document {
	questions := make([]Question, 0, len(bank.Questions))
	for _, q := range bank.Questions {
		questions = append(questions, q.Clone())
	}
	return Document{Version: DocumentVersion, Questions: questions}
}

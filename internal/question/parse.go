package question

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const maxLineBytes = 1024 * 1024

// Parse converts the lines of a text bank into a Bank.
//
// Records are a question line, one line per answer, and a line holding the
// 0-based index of the correct answer. The answer block ends at the first
// bare integer that is a valid index for the answers read so far; other
// integer lines are kept as answers. Blank lines between records are ignored.
// Any structural problem aborts the whole parse.
func Parse(lines []string) (Bank, error) {
	var questions []Question
	index := 0
	for index < len(lines) {
		for index < len(lines) && isBlank(lines[index]) {
			index++
		}
		if index >= len(lines) {
			break
		}

		prompt := strings.TrimSpace(lines[index])
		index++
		if prompt == "" {
			continue
		}

		var (
			answers  []string
			correct  = -1
			badToken string
			badLine  int
		)
		for index < len(lines) && !isBlank(lines[index]) {
			trimmed := strings.TrimSpace(lines[index])
			if value, err := parseIndex(trimmed); err == nil {
				if value >= 0 && value < len(answers) {
					correct = value
					break
				}
				badToken, badLine = trimmed, index+1
			} else {
				badToken, badLine = "", 0
			}
			answers = append(answers, trimmed)
			index++
		}

		if correct < 0 {
			if badToken != "" {
				return Bank{}, &FormatError{
					Line:     badLine,
					Question: prompt,
					Token:    badToken,
					Reason:   "invalid correct answer index",
				}
			}
			return Bank{}, &FormatError{
				Line:     index + 1,
				Question: prompt,
				Reason:   "missing correct answer index",
			}
		}
		index++

		questions = append(questions, Question{
			Prompt:       prompt,
			Answers:      answers,
			CorrectIndex: correct,
		})
	}
	return Bank{Questions: questions}, nil
}

// ParseReader splits r into lines and parses them as a text bank.
func ParseReader(r io.Reader) (Bank, error) {
	lines, err := readLines(r)
	if err != nil {
		return Bank{}, err
	}
	return Parse(lines)
}

// ParseString parses a text bank held in memory.
func ParseString(text string) (Bank, error) {
	return ParseReader(strings.NewReader(text))
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return lines, nil
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func parseIndex(token string) (int, error) {
	value, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(value), nil
}

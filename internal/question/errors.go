package question

import (
	"errors"
	"fmt"
)

// ErrFormat matches every structural problem found in a bank source.
var ErrFormat = errors.New("invalid question bank format")

// ErrNotFound matches a bank source that is missing or cannot be read.
var ErrNotFound = errors.New("question bank not found")

// FormatError reports a structural violation in the line format.
type FormatError struct {
	Line     int
	Question string
	Token    string
	Reason   string
	// Err is the decoder error behind a malformed structured document.
	Err error
}

// Error returns a readable message naming the offending question.
func (err *FormatError) Error() string {
	msg := err.Reason
	if err.Token != "" {
		msg = fmt.Sprintf("%s %q", msg, err.Token)
	}
	if err.Question != "" {
		msg = fmt.Sprintf("%s for question %q", msg, err.Question)
	}
	if err.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", err.Line, msg)
	}
	if err.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err.Err)
	}
	return msg
}

// Unwrap exposes the decoder error, if any.
func (err *FormatError) Unwrap() error {
	return err.Err
}

// Is reports whether target is ErrFormat.
func (err *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// NotFoundError reports a bank source that could not be opened or read.
type NotFoundError struct {
	Path string
	Err  error
}

// Error returns a readable message including the path.
func (err *NotFoundError) Error() string {
	if err.Err == nil {
		return fmt.Sprintf("question bank %q not found", err.Path)
	}
	return fmt.Sprintf("question bank %q not readable: %v", err.Path, err.Err)
}

// Unwrap exposes the underlying I/O error.
func (err *NotFoundError) Unwrap() error {
	return err.Err
}

// Is reports whether target is ErrNotFound.
func (err *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

package session

import (
	"errors"
	"strings"
)

// ErrInvalidPosition is returned for a display position or letter code that
// does not name any slot.
var ErrInvalidPosition = errors.New("invalid display position")

const alphabetSize = 26

// Letter returns the code shown for a display position. Positions 0-25 map to
// A-Z; later positions continue as AA, AB, ... so codes never collide.
func Letter(pos int) (string, error) {
	if pos < 0 {
		return "", ErrInvalidPosition
	}
	var buf []byte
	for n := pos + 1; n > 0; n = (n - 1) / alphabetSize {
		buf = append(buf, byte('A'+(n-1)%alphabetSize))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

// Position parses a letter code back to its display position. Codes are
// case-insensitive and surrounding whitespace is ignored.
func Position(code string) (int, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || len(code) > 6 {
		return 0, ErrInvalidPosition
	}
	n := 0
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return 0, ErrInvalidPosition
		}
		n = n*alphabetSize + int(c-'A') + 1
	}
	return n - 1, nil
}

// mustLetter is Letter for positions already known to be valid.
func mustLetter(pos int) string {
	letter, err := Letter(pos)
	if err != nil {
		return ""
	}
	return letter
}

package session

import (
	"errors"
	"testing"
)

func TestLetterMapping(t *testing.T) {
	cases := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for pos, want := range cases {
		got, err := Letter(pos)
		if err != nil {
			t.Fatalf("Letter(%d): %v", pos, err)
		}
		if got != want {
			t.Fatalf("Letter(%d) = %q, want %q", pos, got, want)
		}
		back, err := Position(got)
		if err != nil || back != pos {
			t.Fatalf("Position(%q) = %d, %v; want %d", got, back, err, pos)
		}
	}
}

// TestLetterUnique verifies no two positions share a code.
func TestLetterUnique(t *testing.T) {
	seen := map[string]int{}
	for pos := 0; pos < 2000; pos++ {
		letter, err := Letter(pos)
		if err != nil {
			t.Fatalf("Letter(%d): %v", pos, err)
		}
		if prev, ok := seen[letter]; ok {
			t.Fatalf("positions %d and %d share %q", prev, pos, letter)
		}
		seen[letter] = pos
	}
}

func TestLetterNegative(t *testing.T) {
	if _, err := Letter(-1); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
}

func TestPositionParsing(t *testing.T) {
	valid := map[string]int{"a": 0, " b ": 1, "C\n": 2, "z": 25, "aa": 26}
	for code, want := range valid {
		got, err := Position(code)
		if err != nil || got != want {
			t.Fatalf("Position(%q) = %d, %v; want %d", code, got, err, want)
		}
	}
	for _, code := range []string{"", "  ", "1", "A1", "é", "-", "AAAAAAA"} {
		if _, err := Position(code); !errors.Is(err, ErrInvalidPosition) {
			t.Fatalf("Position(%q): expected ErrInvalidPosition, got %v", code, err)
		}
	}
}

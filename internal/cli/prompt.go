package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// confirm asks a yes/no question until it gets an answer it understands. An
// empty line or end of input takes the default.
func confirm(reader *bufio.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", label, hint)
		line, err := reader.ReadString('\n')
		atEOF := errors.Is(err, io.EOF)
		if err != nil && !atEOF {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes", "i", "igen":
			return true, nil
		case "n", "no", "nem":
			return false, nil
		default:
			if atEOF {
				return false, fmt.Errorf("invalid response %q", strings.TrimSpace(line))
			}
			fmt.Fprintln(out, "Please answer yes or no.")
		}
	}
}

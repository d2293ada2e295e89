package live

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"kviz/internal/session"
)

// ErrAborted is returned by Run when the user quits before a run finishes.
var ErrAborted = errors.New("quiz aborted")

// Run shows the live UI until the user quits and returns the score of every
// completed run. Quitting in the middle of a run returns ErrAborted along with
// the scores completed so far.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer, opts Options) ([]session.Score, error) {
	model := NewModel(s, opts)
	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		programOpts = append(programOpts, tea.WithInput(in))
	}
	if out != nil {
		programOpts = append(programOpts, tea.WithOutput(out))
	}
	final, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		return nil, fmt.Errorf("live ui: %w", err)
	}
	finished, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("live ui: unexpected model %T", final)
	}
	if finished.Aborted() {
		return finished.Scores(), ErrAborted
	}
	return finished.Scores(), nil
}

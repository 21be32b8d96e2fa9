// Package prompt asks the user to pick from a menu or type a line of text.
// On a terminal the questions are Bubble Tea programs; otherwise a plain
// numbered menu is read line by line.
package prompt

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrAborted is returned when the user cancels a prompt (Ctrl+C, Esc or end
// of input).
var ErrAborted = errors.New("prompt aborted")

// Prompter is the interactive surface used by the selector.
type Prompter interface {
	// Select shows label and items and returns the chosen index.
	Select(label string, items []string) (int, error)
	// Input asks for one line of free text.
	Input(label string) (string, error)
}

// New picks the Bubble Tea prompter when both in and out are terminals and
// the line prompter otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if isTerminal(in) && isTerminal(out) {
		return &Tea{In: in, Out: out}
	}
	return NewLine(in, out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

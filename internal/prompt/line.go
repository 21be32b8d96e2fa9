package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/VoxDroid/cmdy/internal/style"
)

// Line is a Prompter for pipes and dumb terminals. Menus are numbered from 1
// and the answer is read as a number; out-of-range answers ask again.
//
// Answers are read one byte at a time so nothing past the last newline is
// consumed: piped input that follows the answers is left for the commands,
// which read the same stdin.
type Line struct {
	in  io.Reader
	out io.Writer
}

// NewLine returns a line prompter reading answers from in.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: in, out: out}
}

// Select implements Prompter.
func (l *Line) Select(label string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("select: no items")
	}
	_, _ = fmt.Fprintln(l.out, style.Label.Render(label))
	for i, it := range items {
		_, _ = fmt.Fprintf(l.out, "  %d. %s\n", i+1, it)
	}
	for {
		_, _ = fmt.Fprintf(l.out, "Choose [1-%d]: ", len(items))
		ans, err := l.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(ans)
		if err == nil && n >= 1 && n <= len(items) {
			return n - 1, nil
		}
		_, _ = fmt.Fprintf(l.out, "Invalid choice %q\n", ans)
	}
}

// Input implements Prompter.
func (l *Line) Input(label string) (string, error) {
	_, _ = fmt.Fprintf(l.out, "%s: ", style.Label.Render(label))
	return l.readLine()
}

func (l *Line) readLine() (string, error) {
	var line strings.Builder
	b := make([]byte, 1)
	for {
		n, err := l.in.Read(b)
		if n == 1 {
			if b[0] == '\n' {
				return strings.TrimSpace(line.String()), nil
			}
			line.WriteByte(b[0])
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			if line.Len() > 0 {
				return strings.TrimSpace(line.String()), nil
			}
			return "", ErrAborted
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
}

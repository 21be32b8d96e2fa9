package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLineSelect(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"first", "1\n", 0},
		{"last", "3\n", 2},
		{"spaces", "  2  \n", 1},
		{"retry after garbage", "x\n0\n9\n2\n", 1},
		{"no trailing newline", "3", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewLine(strings.NewReader(tc.input), &out)
			got, err := p.Select("Pick one", []string{"a", "b", "c"})
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
			if !strings.Contains(out.String(), "  1. a\n  2. b\n  3. c\n") {
				t.Fatalf("menu not printed: %q", out.String())
			}
		})
	}
}

func TestLineSelect_EOFAborts(t *testing.T) {
	p := NewLine(strings.NewReader("7\n"), &bytes.Buffer{})
	if _, err := p.Select("Pick", []string{"a"}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestLineSelect_NoItems(t *testing.T) {
	p := NewLine(strings.NewReader("1\n"), &bytes.Buffer{})
	if _, err := p.Select("Pick", nil); err == nil {
		t.Fatalf("expected error for empty menu")
	}
}

func TestLineInput_SequentialAnswers(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("2\n deploy \nmake build, make test\n"), &out)

	idx, err := p.Select("Select a command set", []string{"build", "Create new command set"})
	if err != nil || idx != 1 {
		t.Fatalf("Select: %d %v", idx, err)
	}
	name, err := p.Input("Enter new command set name")
	if err != nil || name != "deploy" {
		t.Fatalf("Input name: %q %v", name, err)
	}
	cmds, err := p.Input("Enter commands (comma-separated)")
	if err != nil || cmds != "make build, make test" {
		t.Fatalf("Input commands: %q %v", cmds, err)
	}
	if !strings.Contains(out.String(), "Enter new command set name: ") {
		t.Fatalf("label not printed: %q", out.String())
	}
}

func TestLineInput_EOFAborts(t *testing.T) {
	p := NewLine(strings.NewReader(""), &bytes.Buffer{})
	if _, err := p.Input("Name"); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestNew_NonTerminalUsesLine(t *testing.T) {
	if _, ok := New(strings.NewReader(""), &bytes.Buffer{}).(*Line); !ok {
		t.Fatalf("expected line prompter when not attached to a terminal")
	}
}

func TestLine_LeavesUnreadInput(t *testing.T) {
	in := strings.NewReader("1\ndeploy\nfed to the command\n")
	p := NewLine(in, &bytes.Buffer{})
	if _, err := p.Select("Select a directory", []string{"a", "b"}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if _, err := p.Input("Enter new command set name"); err != nil {
		t.Fatalf("Input: %v", err)
	}
	rest, err := io.ReadAll(in)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(rest) != "fed to the command\n" {
		t.Fatalf("prompter consumed input past its answers, left %q", rest)
	}
}

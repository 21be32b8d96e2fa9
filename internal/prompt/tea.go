package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VoxDroid/cmdy/internal/style"
)

// Tea is a Prompter that runs a small Bubble Tea program per question.
type Tea struct {
	In  io.Reader
	Out io.Writer
}

// Select implements Prompter with an arrow-key menu.
func (t *Tea) Select(label string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("select: no items")
	}
	m, err := t.run(newSelectModel(label, items))
	if err != nil {
		return 0, err
	}
	sm := m.(selectModel)
	if sm.aborted {
		return 0, ErrAborted
	}
	return sm.cursor, nil
}

// Input implements Prompter with a single-line text field.
func (t *Tea) Input(label string) (string, error) {
	m, err := t.run(newInputModel(label))
	if err != nil {
		return "", err
	}
	im := m.(inputModel)
	if im.aborted {
		return "", ErrAborted
	}
	return strings.TrimSpace(im.input.Value()), nil
}

func (t *Tea) run(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(t.In), tea.WithOutput(t.Out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}

type selectModel struct {
	label   string
	items   []string
	cursor  int
	done    bool
	aborted bool
}

func newSelectModel(label string, items []string) selectModel {
	return selectModel{label: label, items: items}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = len(m.items) - 1
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(style.Label.Render(m.label))
	b.WriteString("\n")
	if m.done || m.aborted {
		// Leave only the answer on screen once the program exits.
		if m.done {
			b.WriteString(style.Selected.Render("> " + m.items[m.cursor]))
			b.WriteString("\n")
		}
		return b.String()
	}
	for i, it := range m.items {
		if i == m.cursor {
			b.WriteString(style.Selected.Render("> " + it))
		} else {
			b.WriteString(style.Normal.Render("  " + it))
		}
		b.WriteString("\n")
	}
	b.WriteString(style.Muted.Render("↑/↓ move • enter select • esc cancel"))
	b.WriteString("\n")
	return b.String()
}

type inputModel struct {
	label   string
	input   textinput.Model
	done    bool
	aborted bool
}

func newInputModel(label string) inputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	return inputModel{label: label, input: ti}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return style.Label.Render(m.label) + " " + m.input.Value() + "\n"
	}
	if m.aborted {
		return ""
	}
	return style.Label.Render(m.label) + "\n" + m.input.View() + "\n"
}

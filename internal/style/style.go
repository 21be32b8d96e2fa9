// Package style holds the lipgloss styles shared by the CLI output and the
// interactive prompts. Colors are dropped automatically when stdout is not a
// terminal.
package style

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("99")  // purple
	accent  = lipgloss.Color("86")  // green
	danger  = lipgloss.Color("196") // red

	// Header is used for section titles ("Stored Command Sets:").
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(primary)

	// Label is the prompt question.
	Label = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	// Selected marks the highlighted menu item.
	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	// Normal is an unselected menu item.
	Normal = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	// Muted is for hints and secondary details.
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	// Success reports a completed command set.
	Success = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	// Failure reports a failed command.
	Failure = lipgloss.NewStyle().
		Foreground(danger).
		Bold(true)
)

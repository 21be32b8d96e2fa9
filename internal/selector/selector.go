// Package selector walks the user through picking a working directory and a
// command set, creating and persisting new entries on the way.
package selector

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/VoxDroid/cmdy/internal/prompt"
	"github.com/VoxDroid/cmdy/internal/registry"
)

// Menu labels and sentinel items.
const (
	DirectoryLabel  = "Select a directory"
	CurrentDir      = "Current Directory"
	NewDir          = "Enter New Directory"
	NewDirLabel     = "Enter directory path"
	CommandSetLabel = "Select a command set"
	NewSet          = "Create new command set"
	NewSetLabel     = "Enter new command set name"
	CommandsLabel   = "Enter commands (comma-separated)"
)

// Saver persists the configuration after a mutation. *registry.Store
// implements it.
type Saver interface {
	Save(cfg *registry.Config) error
}

// Selector drives the two menus of the run flow.
type Selector struct {
	Prompt prompt.Prompter
	Store  Saver
	// Getwd resolves the "Current Directory" entry.
	Getwd func() (string, error)
	// Out receives the reason an answer was rejected. Nil discards it.
	Out io.Writer
}

// New returns a Selector resolving the current directory with os.Getwd.
func New(p prompt.Prompter, store Saver) *Selector {
	return &Selector{Prompt: p, Store: store, Getwd: os.Getwd, Out: os.Stderr}
}

// Directory asks where the command set should run. Choosing the trailing
// entry asks for a path, which is stored and saved before it is returned.
func (s *Selector) Directory(cfg *registry.Config) (string, error) {
	items := make([]string, 0, len(cfg.Directories)+2)
	items = append(items, CurrentDir)
	items = append(items, cfg.Directories...)
	items = append(items, NewDir)

	idx, err := s.Prompt.Select(DirectoryLabel, items)
	if err != nil {
		return "", fmt.Errorf("select directory: %w", err)
	}
	switch {
	case idx == 0:
		wd, err := s.Getwd()
		if err != nil {
			return "", fmt.Errorf("current directory: %w", err)
		}
		return wd, nil
	case idx == len(items)-1:
		dir, err := s.ask(NewDirLabel, nonBlank)
		if err != nil {
			return "", err
		}
		cfg.AddDirectory(dir)
		if err := s.Store.Save(cfg); err != nil {
			return "", err
		}
		return dir, nil
	case idx > 0 && idx < len(items)-1:
		return cfg.Directories[idx-1], nil
	}
	return "", fmt.Errorf("select directory: index %d out of range", idx)
}

// CommandSet asks which set to run. A new name that is not stored yet is
// followed by a prompt for its commands, and the new set is saved. When no
// sets exist the menu is skipped.
func (s *Selector) CommandSet(cfg *registry.Config) (registry.CommandSet, error) {
	names := cfg.Names()

	var name string
	if len(names) > 0 {
		items := append(append([]string{}, names...), NewSet)
		idx, err := s.Prompt.Select(CommandSetLabel, items)
		if err != nil {
			return registry.CommandSet{}, fmt.Errorf("select command set: %w", err)
		}
		if idx < 0 || idx >= len(items) {
			return registry.CommandSet{}, fmt.Errorf("select command set: index %d out of range", idx)
		}
		if idx < len(names) {
			name = names[idx]
		}
	}
	if name == "" {
		n, err := s.ask(NewSetLabel, registry.ValidateName)
		if err != nil {
			return registry.CommandSet{}, err
		}
		name = n
	}

	if cs := cfg.Find(name); cs != nil {
		return *cs, nil
	}

	input, err := s.ask(CommandsLabel, nonBlank)
	if err != nil {
		return registry.CommandSet{}, err
	}
	cs := registry.CommandSet{Name: name, Commands: registry.SplitCommands(input)}
	cfg.Add(cs)
	if err := s.Store.Save(cfg); err != nil {
		return registry.CommandSet{}, err
	}
	return cs, nil
}

// ask repeats the question until valid accepts the answer.
func (s *Selector) ask(label string, valid func(string) error) (string, error) {
	for {
		ans, err := s.Prompt.Input(label)
		if err != nil {
			return "", fmt.Errorf("%s: %w", strings.ToLower(label), err)
		}
		if err := valid(ans); err != nil {
			if s.Out != nil {
				_, _ = fmt.Fprintln(s.Out, err)
			}
			continue
		}
		return ans, nil
	}
}

func nonBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value required")
	}
	return nil
}

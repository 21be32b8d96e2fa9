// Package registry stores cmdy's directories, command sets and run policies
// in a JSON document. The document can also be exported as YAML.
package registry

import (
	"encoding/json"
	"fmt"
	"time"
)

// Config is the persisted document.
type Config struct {
	Directories []string     `json:"directories" yaml:"directories"`
	CommandSets []CommandSet `json:"command_sets" yaml:"command_sets"`
	Policies    []RunPolicy  `json:"policies,omitempty" yaml:"policies,omitempty"`
}

// CommandSet is a named, ordered list of shell commands run together.
type CommandSet struct {
	Name     string   `json:"name" yaml:"name"`
	Commands []string `json:"commands" yaml:"commands"`
}

// Mode selects how a single command is executed.
type Mode string

// Execution modes.
const (
	ModeForeground Mode = "foreground"
	ModeTimeboxed  Mode = "timeboxed"
)

// RunPolicy maps a command line to an execution mode. Command is matched
// literally against the whole command string.
type RunPolicy struct {
	Command  string   `json:"command" yaml:"command"`
	Mode     Mode     `json:"mode" yaml:"mode"`
	Duration Duration `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// Duration is a time.Duration encoded as a Go duration string ("10s").
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"10s\": %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("duration %q is negative", s)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

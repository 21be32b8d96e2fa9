// Package execlog appends one line per completed command-set run to a plain
// text log and reads it back verbatim.
package execlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/VoxDroid/cmdy/internal/config"
)

// TimeLayout is the timestamp format of each log line.
const TimeLayout = "2006-01-02 15:04:05"

// NoLogs is returned by ReadAll when the log file does not exist.
const NoLogs = "No logs found."

// Log is an append-only execution log.
type Log struct {
	path string
	now  func() time.Time
}

// New returns a Log writing to path.
func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// Open returns a Log at the configured log path.
func Open() (*Log, error) {
	p, err := config.LogPath()
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	return New(p), nil
}

// Path returns the log file location.
func (l *Log) Path() string { return l.path }

// Line formats a log line for name executed at t.
func Line(t time.Time, name string) string {
	return fmt.Sprintf("%s - Executed: %s\n", t.Local().Format(TimeLayout), name)
}

// Append records a completed run of the named command set.
func (l *Log) Append(name string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if _, err := f.WriteString(Line(l.now(), name)); err != nil {
		_ = f.Close()
		return fmt.Errorf("write log: %w", err)
	}
	return f.Close()
}

// ReadAll returns the whole log, or NoLogs when it does not exist yet.
func (l *Log) ReadAll() (string, error) {
	b, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NoLogs, nil
		}
		return "", fmt.Errorf("read log file: %w", err)
	}
	return string(b), nil
}

package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/VoxDroid/cmdy/internal/config"
)

// ErrMalformedConfig is returned by Load when the config file exists but
// cannot be parsed.
var ErrMalformedConfig = errors.New("malformed config file")

// Store loads and saves a Config at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open returns a Store for the configured config path.
func Open() (*Store, error) {
	p, err := config.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	return NewStore(p), nil
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.path }

// DefaultConfig returns the empty document used when no config exists yet.
func DefaultConfig() *Config {
	return &Config{Directories: []string{}, CommandSets: []CommandSet{}}
}

// Load reads the config file. A missing or unreadable file yields
// DefaultConfig; content that is present but not valid JSON is an error.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).WithField("path", s.path).Warn("config unreadable, starting from an empty config")
		} else {
			log.WithField("path", s.path).Debug("no config file, using defaults")
		}
		return DefaultConfig(), nil
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformedConfig, s.path, err)
	}
	if cfg.Directories == nil {
		cfg.Directories = []string{}
	}
	if cfg.CommandSets == nil {
		cfg.CommandSets = []CommandSet{}
	}
	for i := range cfg.CommandSets {
		if cfg.CommandSets[i].Commands == nil {
			cfg.CommandSets[i].Commands = []string{}
		}
	}
	log.WithFields(log.Fields{"path": s.path, "sets": len(cfg.CommandSets)}).Debug("config loaded")
	return cfg, nil
}

// Save pretty-prints cfg and overwrites the config file.
func (s *Store) Save(cfg *Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("save config file: %w", err)
	}
	log.WithField("path", s.path).Debug("config saved")
	return nil
}

// EncodeYAML renders cfg as YAML for export.
func EncodeYAML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("serialize config as yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("serialize config as yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Encode renders cfg the way it is stored on disk.
func Encode(cfg *Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize config: %w", err)
	}
	return data, nil
}

// Find returns the first command set named name, or nil.
func (c *Config) Find(name string) *CommandSet {
	for i := range c.CommandSets {
		if c.CommandSets[i].Name == name {
			return &c.CommandSets[i]
		}
	}
	return nil
}

// Names returns the command set names in stored order.
func (c *Config) Names() []string {
	out := make([]string, 0, len(c.CommandSets))
	for _, cs := range c.CommandSets {
		out = append(out, cs.Name)
	}
	return out
}

// Add appends cs. Uniqueness is the caller's concern.
func (c *Config) Add(cs CommandSet) {
	c.CommandSets = append(c.CommandSets, cs)
}

// AddDirectory appends dir to the stored directories.
func (c *Config) AddDirectory(dir string) {
	c.Directories = append(c.Directories, dir)
}

// Delete removes every command set named name and reports whether any was
// removed.
func (c *Config) Delete(name string) bool {
	kept := c.CommandSets[:0]
	removed := false
	for _, cs := range c.CommandSets {
		if cs.Name == name {
			removed = true
			continue
		}
		kept = append(kept, cs)
	}
	c.CommandSets = kept
	return removed
}

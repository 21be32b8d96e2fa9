package registry

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "config.json"))
}

func TestLoad_MissingFileYieldsDefault(t *testing.T) {
	s := newTestStore(t)
	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("expected empty default config, got %+v", cfg)
	}
	if cfg.Directories == nil || cfg.CommandSets == nil {
		t.Fatalf("default slices must be non-nil so they serialize as []")
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := s.Load(); !errors.Is(err, ErrMalformedConfig) {
		t.Fatalf("expected ErrMalformedConfig, got %v", err)
	}
}

func TestLoad_NullArraysNormalized(t *testing.T) {
	s := newTestStore(t)
	body := `{"directories": null, "command_sets": [{"name": "x", "commands": null}]}`
	if err := os.WriteFile(s.Path(), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Directories == nil || cfg.CommandSets[0].Commands == nil {
		t.Fatalf("expected null arrays to become empty slices: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cases := []*Config{
		DefaultConfig(),
		{
			Directories: []string{"/srv/app", "/home/me/site"},
			CommandSets: []CommandSet{
				{Name: "build", Commands: []string{"git pull", "npm ci", "npm run build"}},
				{Name: "dev", Commands: []string{"npm run dev", ""}},
			},
		},
		{
			Directories: []string{},
			CommandSets: []CommandSet{{Name: "only", Commands: []string{}}},
			Policies: []RunPolicy{
				{Command: "make serve", Mode: ModeTimeboxed, Duration: Duration(1500 * time.Millisecond)},
			},
		},
	}
	for i, want := range cases {
		s := newTestStore(t)
		if err := s.Save(want); err != nil {
			t.Fatalf("case %d: Save: %v", i, err)
		}
		got, err := s.Load()
		if err != nil {
			t.Fatalf("case %d: Load: %v", i, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("case %d: round trip mismatch\nwant %+v\ngot  %+v", i, want, got)
		}
	}
}

func TestSave_DefaultShape(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(DefaultConfig()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `"directories": []`) || !strings.Contains(out, `"command_sets": []`) {
		t.Fatalf("unexpected default document: %s", out)
	}
	if strings.Contains(out, "policies") {
		t.Fatalf("empty policies should be omitted: %s", out)
	}
}

func TestSave_CreatesParentDir(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "a", "b", "config.json"))
	if err := s.Save(DefaultConfig()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Fatalf("expected config file: %v", err)
	}
}

func TestFindReturnsFirstMatch(t *testing.T) {
	cfg := &Config{CommandSets: []CommandSet{
		{Name: "dup", Commands: []string{"first"}},
		{Name: "dup", Commands: []string{"second"}},
	}}
	cs := cfg.Find("dup")
	if cs == nil || cs.Commands[0] != "first" {
		t.Fatalf("expected first match, got %+v", cs)
	}
	if cfg.Find("missing") != nil {
		t.Fatalf("expected nil for missing name")
	}
}

func TestDelete(t *testing.T) {
	cfg := &Config{CommandSets: []CommandSet{
		{Name: "a", Commands: []string{"true"}},
		{Name: "b", Commands: []string{"true"}},
	}}
	if cfg.Delete("missing") {
		t.Fatalf("expected no removal")
	}
	if got := cfg.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("deleting a missing name changed the list: %v", got)
	}
	if !cfg.Delete("a") {
		t.Fatalf("expected removal of a")
	}
	if got := cfg.Names(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("expected [b], got %v", got)
	}
}

func TestAddDirectoryPersists(t *testing.T) {
	s := newTestStore(t)
	cfg, _ := s.Load()
	cfg.AddDirectory("/tmp/project")
	if err := s.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(again.Directories, []string{"/tmp/project"}) {
		t.Fatalf("expected directory to persist, got %v", again.Directories)
	}
}

func TestEncodeYAML(t *testing.T) {
	cfg := &Config{
		Directories: []string{"/srv/app"},
		CommandSets: []CommandSet{{Name: "dev", Commands: []string{"npm install", "npm run dev"}}},
		Policies:    []RunPolicy{{Command: "npm run dev", Mode: ModeTimeboxed, Duration: Duration(15 * time.Second)}},
	}
	b, err := EncodeYAML(cfg)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	out := string(b)
	for _, want := range []string{"directories:\n  - /srv/app\n", "command_sets:\n", "name: dev\n", "mode: timeboxed\n", "duration: 15s\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("yaml missing %q:\n%s", want, out)
		}
	}

	b, err = EncodeYAML(DefaultConfig())
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	if strings.Contains(string(b), "policies") {
		t.Fatalf("empty policies should be omitted:\n%s", b)
	}
}

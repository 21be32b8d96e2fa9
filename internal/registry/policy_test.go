package registry

import (
	"encoding/json"
	"testing"
	"time"
)

func TestPolicyFor_Defaults(t *testing.T) {
	cfg := DefaultConfig()

	p := cfg.PolicyFor("npm run dev")
	if p.Mode != ModeTimeboxed || time.Duration(p.Duration) != DefaultTimebox {
		t.Fatalf("expected timeboxed 10s for npm run dev, got %+v", p)
	}
	for _, c := range []string{"npm run build", "npm run dev ", " npm run dev", "npm  run dev", ""} {
		if got := cfg.PolicyFor(c).Mode; got != ModeForeground {
			t.Fatalf("%q: expected foreground, got %s", c, got)
		}
	}
}

func TestPolicyFor_ConfiguredReplacesDefaults(t *testing.T) {
	cfg := &Config{Policies: []RunPolicy{
		{Command: "hugo server", Mode: ModeTimeboxed, Duration: Duration(3 * time.Second)},
		{Command: "make watch", Mode: ModeTimeboxed},
	}}
	if p := cfg.PolicyFor("hugo server"); time.Duration(p.Duration) != 3*time.Second {
		t.Fatalf("expected 3s, got %v", time.Duration(p.Duration))
	}
	if p := cfg.PolicyFor("make watch"); time.Duration(p.Duration) != DefaultTimebox {
		t.Fatalf("expected missing duration to default, got %v", time.Duration(p.Duration))
	}
	if p := cfg.PolicyFor("npm run dev"); p.Mode != ModeForeground {
		t.Fatalf("configured policies replace the built-in table, got %+v", p)
	}
}

func TestDurationJSON(t *testing.T) {
	var p RunPolicy
	if err := json.Unmarshal([]byte(`{"command":"x","mode":"timeboxed","duration":"250ms"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if time.Duration(p.Duration) != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", time.Duration(p.Duration))
	}
	b, err := json.Marshal(p.Duration)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"250ms"` {
		t.Fatalf("expected \"250ms\", got %s", b)
	}
	for _, bad := range []string{`10`, `"soon"`, `"-1s"`} {
		var d Duration
		if err := json.Unmarshal([]byte(bad), &d); err == nil {
			t.Fatalf("expected error for %s", bad)
		}
	}
}

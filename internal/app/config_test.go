package app

import (
	"flag"
	"testing"

	"pixlife/internal/sims/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-preset", "fine", "-rule", "a", "-w", "100", "-scale", "3", "-seed", "12", "-workers", "2"})
	if err != nil {
		t.Fatal(err)
	}

	lc, err := cfg.LifeConfig()
	if err != nil {
		t.Fatalf("LifeConfig: %v", err)
	}
	if lc.Rule != life.RuleClassic || lc.Width != 100 || lc.Height != 600 || lc.CellSize != 3 || lc.Workers != 2 {
		t.Fatalf("unexpected config %+v", lc)
	}
	if !lc.Pausable || lc.Seeder != life.SeedClusters {
		t.Fatal("fine preset values lost")
	}
	if cfg.ResolveSeed() != 12 {
		t.Fatal("explicit seed not used")
	}
}

func TestLifeConfigRejectsBadValues(t *testing.T) {
	cases := []*Config{
		{Preset: "huge"},
		{Preset: "coarse", Rule: "seeds"},
		{Preset: "coarse", Seeder: "glider"},
		{Preset: "coarse", Edge: "torus"},
		{ConfigFile: "/nonexistent/life.json"},
	}
	for _, c := range cases {
		if _, err := c.LifeConfig(); err == nil {
			t.Fatalf("%+v: expected error", c)
		}
	}
}

func TestNewSimUsesRegistry(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "30", "-h", "20", "-edge", "all"}); err != nil {
		t.Fatal(err)
	}

	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	l, ok := sim.(*life.Life)
	if !ok {
		t.Fatalf("got %T, want *life.Life", sim)
	}
	if got := sim.Size(); got.W != 30 || got.H != 20 {
		t.Fatalf("size %+v, want 30x20", got)
	}
	if l.BorderFrozen() {
		t.Fatal("-edge all not passed to the factory")
	}
}

func TestNewSimRejectsUnknownSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "wireworld"
	if _, err := cfg.NewSim(); err == nil {
		t.Fatal("expected error for unregistered sim")
	}
	cfg = NewConfig()
	cfg.Rule = "seeds"
	if _, err := cfg.NewSim(); err == nil {
		t.Fatal("expected error for invalid overlay")
	}
}

func TestOverlayOmitsUnsetFlags(t *testing.T) {
	m := NewConfig().Overlay()
	if len(m) != 1 || m["preset"] != "coarse" {
		t.Fatalf("overlay %v, want only the preset", m)
	}
}

func TestResolveSeedDrawsWhenZero(t *testing.T) {
	cfg := NewConfig()
	// A zero draw is possible but vanishingly unlikely twice in a row.
	if cfg.ResolveSeed() == 0 && cfg.ResolveSeed() == 0 {
		t.Fatal("expected a seed from the entropy source")
	}
}

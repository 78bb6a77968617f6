package life

import (
	"slices"
	"testing"

	"pixlife/internal/core"
)

func TestResetCoarseDiamond(t *testing.T) {
	l := NewWithConfig(Coarse())
	l.Reset(0)

	u := l.Universe()
	if p := u.Current().Population(); p != 4*10 {
		t.Fatalf("population=%d, want 40", p)
	}
	if u.Next().Population() != 0 {
		t.Fatal("next buffer must start dead")
	}
	if !u.Current().Get(64-10, 48-10) || !u.Current().Get(64+10, 48+10) {
		t.Fatal("outer diamond corners missing")
	}
	if len(l.Cells()) != 128*96 {
		t.Fatalf("cells=%d, want %d", len(l.Cells()), 128*96)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := Fine()
	cfg.Width, cfg.Height = 120, 90
	cfg.Clusters = 40
	l := NewWithConfig(cfg)

	l.Reset(99)
	initial := append([]uint8(nil), l.Cells()...)
	for i := 0; i < 8; i++ {
		l.Step()
	}
	l.Reset(99)
	if !slices.Equal(initial, l.Cells()) {
		t.Fatal("Reset with the same seed is not deterministic")
	}
	if l.Universe().Generation() != 0 {
		t.Fatal("Reset must rewind the generation counter")
	}
	if l.Universe().Next().Population() != 0 {
		t.Fatal("Reset must clear the next buffer")
	}
}

func TestRegistryBuildsLife(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life not registered")
	}
	sim := factory(map[string]string{"preset": "fine", "w": "64", "h": "48", "rule": "classic"})
	l, ok := sim.(*Life)
	if !ok {
		t.Fatalf("factory returned %T", sim)
	}
	if got := l.Size(); got != (core.Size{W: 64, H: 48}) {
		t.Fatalf("size=%+v", got)
	}
	if l.Config().Rule != RuleClassic || l.Config().Seeder != SeedClusters || !l.Config().Pausable {
		t.Fatalf("unexpected config %+v", l.Config())
	}
}

func TestParametersAndControls(t *testing.T) {
	l := New(32, 32)
	l.Reset(0)
	l.Step()

	snap := l.Parameters()
	if p, ok := snap.Lookup("generation"); !ok || p.Value != "1" {
		t.Fatalf("generation parameter=%+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("rule"); !ok || p.Value != "classic" {
		t.Fatalf("rule parameter=%+v, %v", p, ok)
	}

	if !l.SetIntParameter("radius", 4) || l.Config().Radius != 4 {
		t.Fatal("radius not updated")
	}
	if !l.SetIntParameter("max_ray", 500) || l.Config().MaxRay != 32 {
		t.Fatalf("max_ray not clamped: %d", l.Config().MaxRay)
	}
	if l.SetIntParameter("width", 10) {
		t.Fatal("unknown parameter accepted")
	}

	l.Reset(0)
	if p := l.Universe().Current().Population(); p != 16 {
		t.Fatalf("population after radius change=%d, want 16", p)
	}
}

func TestBorderFrozen(t *testing.T) {
	cfg := Coarse()
	if !NewWithConfig(cfg).BorderFrozen() {
		t.Fatal("interior stepping freezes the border")
	}
	cfg.Edge = EdgeAll
	if NewWithConfig(cfg).BorderFrozen() {
		t.Fatal("evaluating all cells leaves no frozen border")
	}
}

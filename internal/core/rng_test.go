package core

import (
	"bytes"
	"errors"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestEntropySeedPrefersSource(t *testing.T) {
	seed, src := EntropySeed(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}))
	if src != EntropySystem {
		t.Fatalf("source=%q, want %q", src, EntropySystem)
	}
	if seed != 0x04030201 {
		t.Fatalf("seed=%#x, want 0x04030201", seed)
	}
}

func TestEntropySeedFallsBackToClock(t *testing.T) {
	cases := map[string]*bytes.Reader{
		"short": bytes.NewReader([]byte{1, 2}),
		"empty": bytes.NewReader(nil),
	}
	for name, r := range cases {
		if _, src := EntropySeed(r); src != EntropyClock {
			t.Fatalf("%s: source=%q, want %q", name, src, EntropyClock)
		}
	}
	if _, src := EntropySeed(failingReader{}); src != EntropyClock {
		t.Fatalf("failing reader: source=%q", src)
	}
	if _, src := EntropySeed(nil); src != EntropyClock {
		t.Fatalf("nil reader: source=%q", src)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) must return 0")
	}
}

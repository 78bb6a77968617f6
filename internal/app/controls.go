package app

import (
	"log"

	"pixlife/internal/core"
)

// Input is the set of keys pressed since the previous frame.
type Input struct {
	Quit         bool
	TogglePause  bool
	StepOnce     bool
	Reseed       bool
	ReseedRandom bool
}

// Controls applies per-frame input to a simulation and decides when it
// advances.
type Controls struct {
	sim  core.Sim
	pace *core.FixedStep

	pausable bool
	paused   bool
	tickOnce bool
	seed     int64
}

// NewControls wraps sim, which must already have been reset with seed.
func NewControls(sim core.Sim, pace *core.FixedStep, seed int64, pausable bool) *Controls {
	return &Controls{sim: sim, pace: pace, seed: seed, pausable: pausable}
}

// Paused reports whether generations are currently held.
func (c *Controls) Paused() bool { return c.paused }

// Seed returns the seed the current run was started from.
func (c *Controls) Seed() int64 { return c.seed }

// Reset reinitializes the simulation with seed.
func (c *Controls) Reset(seed int64) {
	c.seed = seed
	c.sim.Reset(seed)
	c.tickOnce = false
}

// Apply handles one frame of input and steps the simulation when due.
// It reports false once the user asked to quit. Reseeding is ignored while
// paused so the frozen generation stays on screen.
func (c *Controls) Apply(in Input) bool {
	if in.Quit {
		return false
	}
	if c.pausable && in.TogglePause {
		c.paused = !c.paused
	}
	if c.paused {
		if in.StepOnce {
			c.tickOnce = true
		}
	} else {
		if in.Reseed {
			c.Reset(c.seed)
		}
		if in.ReseedRandom {
			seed, src := core.SystemSeed()
			log.Printf("reseed from %s: %d", src, seed)
			c.Reset(int64(seed))
		}
	}

	if (!c.paused && c.pace.ShouldStep()) || c.tickOnce {
		c.sim.Step()
		c.tickOnce = false
	}
	return true
}

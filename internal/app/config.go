package app

import (
	"flag"
	"log"
	"strconv"

	"github.com/pkg/errors"

	"pixlife/internal/core"
	"pixlife/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Preset     string
	ConfigFile string
	Rule       string
	Seeder     string
	Edge       string
	Width      int
	Height     int
	Scale      int
	TPS        int
	Seed       int64
	Workers    int
	HUD        bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Preset: "coarse", TPS: 20, HUD: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "registered simulation to run")
	fs.StringVar(&c.Preset, "preset", c.Preset, "variant to run: coarse or fine")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON configuration file (overrides -preset)")
	fs.StringVar(&c.Rule, "rule", c.Rule, "survival rule: classic or permissive")
	fs.StringVar(&c.Seeder, "seeder", c.Seeder, "initial pattern: diamond or clusters")
	fs.StringVar(&c.Edge, "edge", c.Edge, "cells to evaluate: interior or all")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random seeding, 0 draws one from the system")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands evaluated concurrently per step")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
}

// Overlay returns the simulation settings that were given, keyed the way
// factories in the core registry expect.
func (c *Config) Overlay() map[string]string {
	m := map[string]string{}
	str := func(key, v string) {
		if v != "" {
			m[key] = v
		}
	}
	num := func(key string, v int) {
		if v > 0 {
			m[key] = strconv.Itoa(v)
		}
	}
	str("preset", c.Preset)
	str("config", c.ConfigFile)
	str("rule", c.Rule)
	str("seeder", c.Seeder)
	str("edge", c.Edge)
	num("w", c.Width)
	num("h", c.Height)
	num("cell", c.Scale)
	num("workers", c.Workers)
	return m
}

// LifeConfig resolves the preset or configuration file and applies the
// command-line overrides on top of it.
func (c *Config) LifeConfig() (life.Config, error) {
	return life.ParseMap(c.Overlay())
}

// NewSim validates the overlay and builds the selected simulation through
// the core registry.
func (c *Config) NewSim() (core.Sim, error) {
	if _, err := c.LifeConfig(); err != nil {
		return nil, err
	}
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, errors.Errorf("unknown sim %q", c.Sim)
	}
	return factory(c.Overlay()), nil
}

// ResolveSeed returns the configured seed, or draws one from the system
// entropy source when none was given.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		log.Printf("seed: %d", c.Seed)
		return c.Seed
	}
	seed, src := core.SystemSeed()
	log.Printf("using %s", src)
	log.Printf("seed: %d", seed)
	return int64(seed)
}

package life

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config holds the dimensions and policies of a Life simulation.
type Config struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	CellSize int    `json:"cell_size"`
	Rule     Rule   `json:"-"`
	Seeder   Seeder `json:"-"`
	Edge     Edge   `json:"-"`

	// Diamond seeding.
	Radius int `json:"radius"`
	// Cluster seeding.
	Clusters int `json:"clusters"`
	MaxRay   int `json:"max_ray"`

	Workers  int  `json:"workers"`
	Pausable bool `json:"pausable"`
}

// Coarse is the 128x96 preset with 5 pixel cells, the classic rule and a
// diamond of radius 10. It has no pause key.
func Coarse() Config {
	return Config{
		Width:    128,
		Height:   96,
		CellSize: 5,
		Rule:     RuleClassic,
		Seeder:   SeedDiamond,
		Edge:     EdgeInterior,
		Radius:   10,
		Clusters: 0,
		MaxRay:   DefaultMaxRay,
		Workers:  1,
	}
}

// Fine is the 800x600 preset with 1 pixel cells, the permissive rule and
// randomly placed clusters. Space toggles pause.
func Fine() Config {
	return Config{
		Width:    800,
		Height:   600,
		CellSize: 1,
		Rule:     RulePermissive,
		Seeder:   SeedClusters,
		Edge:     EdgeInterior,
		Radius:   10,
		Clusters: 400,
		MaxRay:   DefaultMaxRay,
		Workers:  1,
		Pausable: true,
	}
}

// DefaultConfig returns the coarse preset.
func DefaultConfig() Config { return Coarse() }

// Preset looks up a named configuration.
func Preset(name string) (Config, bool) {
	switch name {
	case "coarse", "":
		return Coarse(), true
	case "fine":
		return Fine(), true
	}
	return Config{}, false
}

// FromMap populates a Config from a string map, the form the sim registry
// passes to factories. A map ParseMap rejects yields the default config.
func FromMap(cfg map[string]string) Config {
	c, err := ParseMap(cfg)
	if err != nil {
		log.Printf("life: %v, using defaults", err)
		return DefaultConfig()
	}
	return c
}

// ParseMap resolves the base configuration named by the "config" (a JSON
// file) or "preset" key and overlays the remaining keys on top of it.
// Unknown keys are ignored.
func ParseMap(cfg map[string]string) (Config, error) {
	var (
		c   Config
		err error
	)
	if path := cfg["config"]; path != "" {
		if c, err = LoadConfig(path); err != nil {
			return c, err
		}
	} else {
		var ok bool
		if c, ok = Preset(cfg["preset"]); !ok {
			return DefaultConfig(), errors.Errorf("unknown preset %q", cfg["preset"])
		}
	}

	ints := []struct {
		key string
		dst *int
		min int
	}{
		{"w", &c.Width, 1},
		{"h", &c.Height, 1},
		{"cell", &c.CellSize, 1},
		{"radius", &c.Radius, 0},
		{"clusters", &c.Clusters, 0},
		{"max_ray", &c.MaxRay, 0},
		{"workers", &c.Workers, 1},
	}
	for _, f := range ints {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "%s", f.key)
		}
		if n < f.min {
			return c, errors.Errorf("%s must be at least %d, got %d", f.key, f.min, n)
		}
		*f.dst = n
	}

	if v, ok := cfg["rule"]; ok {
		if c.Rule, err = ParseRule(v); err != nil {
			return c, errors.Wrap(err, "rule")
		}
	}
	if v, ok := cfg["seeder"]; ok {
		if c.Seeder, err = ParseSeeder(v); err != nil {
			return c, errors.Wrap(err, "seeder")
		}
	}
	if v, ok := cfg["edge"]; ok {
		if c.Edge, err = ParseEdge(v); err != nil {
			return c, errors.Wrap(err, "edge")
		}
	}
	if v, ok := cfg["pausable"]; ok {
		if c.Pausable, err = strconv.ParseBool(v); err != nil {
			return c, errors.Wrap(err, "pausable")
		}
	}
	return c, c.Validate()
}

type fileConfig struct {
	Preset string `json:"preset"`
	Rule   string `json:"rule"`
	Seeder string `json:"seeder"`
	Edge   string `json:"edge"`
}

// LoadConfig reads a JSON configuration file. Fields absent from the file
// keep the values of the preset the file names, or the default preset.
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	var names fileConfig
	if err = json.Unmarshal(data, &names); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	config, ok := Preset(names.Preset)
	if !ok {
		return DefaultConfig(), errors.Errorf("[LoadConfig] unknown preset %q in %s", names.Preset, filename)
	}
	if err = json.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if names.Rule != "" {
		if config.Rule, err = ParseRule(names.Rule); err != nil {
			return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] %s", filename)
		}
	}
	if names.Seeder != "" {
		if config.Seeder, err = ParseSeeder(names.Seeder); err != nil {
			return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] %s", filename)
		}
	}
	if names.Edge != "" {
		if config.Edge, err = ParseEdge(names.Edge); err != nil {
			return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] %s", filename)
		}
	}
	return config, config.Validate()
}

// Validate reports configurations the engine cannot run.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Radius < 0 || c.Clusters < 0 || c.MaxRay < 0 {
		return errors.New("seeding parameters must not be negative")
	}
	return nil
}

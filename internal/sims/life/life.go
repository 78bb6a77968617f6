package life

import (
	"log"
	"strconv"

	"pixlife/internal/core"
)

// Life adapts a Universe to the core.Sim contract and owns its seeding
// configuration.
type Life struct {
	cfg Config
	u   *Universe
}

// New returns a Life simulation with the default configuration and the
// given dimensions.
func New(w, h int) *Life {
	c := DefaultConfig()
	c.Width, c.Height = w, h
	return NewWithConfig(c)
}

// NewWithConfig allocates both buffers for cfg. Nothing is seeded until Reset.
func NewWithConfig(cfg Config) *Life {
	u := NewUniverse(cfg.Width, cfg.Height, cfg.Rule)
	u.SetEdge(cfg.Edge)
	u.SetWorkers(cfg.Workers)
	g := u.Current()
	cfg.Width, cfg.Height = g.W, g.H
	return &Life{cfg: cfg, u: u}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Cells exposes the current generation.
func (l *Life) Cells() []uint8 { return l.u.Current().Cells() }

// Universe exposes the underlying double buffer.
func (l *Life) Universe() *Universe { return l.u }

// Config returns the active configuration.
func (l *Life) Config() Config { return l.cfg }

// Reset clears both buffers and seeds the current one with the configured
// strategy. The seed only matters for randomized strategies.
func (l *Life) Reset(seed int64) {
	log.Printf("init world: %s seeding, %s rule, seed %d", l.cfg.Seeder, l.cfg.Rule, seed)
	l.u.Reset()
	g := l.u.Current()
	switch l.cfg.Seeder {
	case SeedClusters:
		SeedClustersWith(g, core.NewRNG(seed), l.cfg.Clusters, l.cfg.MaxRay)
	default:
		SeedDiamondAt(g, g.W/2, g.H/2, l.cfg.Radius)
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() { l.u.Step() }

// Parameters reports the policies and progress of the simulation.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Policy",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Value: l.cfg.Rule.String()},
				{Key: "seeder", Label: "Seeder", Value: l.cfg.Seeder.String()},
				{Key: "edge", Label: "Edges", Value: l.cfg.Edge.String()},
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(l.u.Generation())},
				{Key: "population", Label: "Population", Value: strconv.Itoa(l.u.Current().Population())},
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				{Key: "radius", Label: "Radius", Value: strconv.Itoa(l.cfg.Radius)},
				{Key: "clusters", Label: "Clusters", Value: strconv.Itoa(l.cfg.Clusters)},
				{Key: "max_ray", Label: "Max ray", Value: strconv.Itoa(l.cfg.MaxRay)},
			},
		},
	}}
}

// ParameterControls lists the seeding parameters adjustable from the HUD.
// Changes take effect on the next Reset.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "radius", Label: "Radius", Step: 1, Min: 0, HasMin: true},
		{Key: "clusters", Label: "Clusters", Step: 25, Min: 0, HasMin: true},
		{Key: "max_ray", Label: "Max ray", Step: 1, Min: 1, Max: 32, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates one of the seeding parameters.
func (l *Life) SetIntParameter(key string, value int) bool {
	for _, ctrl := range l.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "radius":
			l.cfg.Radius = value
		case "clusters":
			l.cfg.Clusters = value
		case "max_ray":
			l.cfg.MaxRay = value
		}
		return true
	}
	return false
}

// BorderFrozen reports whether the outermost ring is excluded from stepping.
func (l *Life) BorderFrozen() bool { return l.cfg.Edge == EdgeInterior }

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}

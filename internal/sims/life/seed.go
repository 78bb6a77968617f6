package life

import (
	"fmt"
	"strings"

	"pixlife/internal/core"
)

// Seeder selects how the first generation is populated.
type Seeder uint8

const (
	// SeedDiamond draws the diagonals of a square centred on the grid.
	SeedDiamond Seeder = iota
	// SeedClusters scatters small three-ray clusters at random positions.
	SeedClusters
)

func (s Seeder) String() string {
	switch s {
	case SeedDiamond:
		return "diamond"
	case SeedClusters:
		return "clusters"
	default:
		return fmt.Sprintf("seeder(%d)", uint8(s))
	}
}

// ParseSeeder maps a seeder name to its value.
func ParseSeeder(s string) (Seeder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "diamond":
		return SeedDiamond, nil
	case "clusters", "random":
		return SeedClusters, nil
	}
	return 0, fmt.Errorf("unknown seeder %q", s)
}

// DefaultMaxRay bounds the length of a cluster ray.
const DefaultMaxRay = 10

// SeedDiamondAt marks the four cells (cx±i, cy±i) for every i from radius
// down to 1. Cells falling outside the grid are skipped.
func SeedDiamondAt(g *core.Grid, cx, cy, radius int) {
	for i := radius; i > 0; i-- {
		g.Set(cx-i, cy-i, true)
		g.Set(cx+i, cy+i, true)
		g.Set(cx-i, cy+i, true)
		g.Set(cx+i, cy-i, true)
	}
}

// SeedClustersWith picks count uniformly distributed centres and draws three
// rays from each: up-left, up-right and straight down. Every ray has its own
// random length in [1, maxRay] and starts one cell away from the centre.
func SeedClustersWith(g *core.Grid, rng *core.RNG, count, maxRay int) {
	if maxRay <= 0 {
		maxRay = DefaultMaxRay
	}
	for c := 0; c < count; c++ {
		cx := rng.IntN(g.W)
		cy := rng.IntN(g.H)

		left := 1 + rng.IntN(maxRay)
		right := 1 + rng.IntN(maxRay)
		down := 1 + rng.IntN(maxRay)
		for i := 1; i <= left; i++ {
			g.Set(cx-i, cy-i, true)
		}
		for i := 1; i <= right; i++ {
			g.Set(cx+i, cy-i, true)
		}
		for i := 1; i <= down; i++ {
			g.Set(cx, cy+i, true)
		}
	}
}

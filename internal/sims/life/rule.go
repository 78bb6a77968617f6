package life

import (
	"fmt"
	"strings"

	"pixlife/internal/core"
)

// Rule selects the survival and birth table applied to each cell.
type Rule uint8

const (
	// RuleClassic is B3/S23: birth on exactly 3 neighbours, survival on 2 or 3.
	RuleClassic Rule = iota
	// RulePermissive is B3/S12345: birth on exactly 3, survival on 1 through 5.
	RulePermissive
)

func (r Rule) String() string {
	switch r {
	case RuleClassic:
		return "classic"
	case RulePermissive:
		return "permissive"
	default:
		return fmt.Sprintf("rule(%d)", uint8(r))
	}
}

// ParseRule maps a rule name to its value. Both the long names and the
// letters "a" and "b" are accepted.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "a":
		return RuleClassic, nil
	case "permissive", "b":
		return RulePermissive, nil
	}
	return 0, fmt.Errorf("unknown rule %q", s)
}

// Next returns the state of a cell in the following generation given its
// current state and the number of live neighbours.
func (r Rule) Next(alive bool, neighbors int) bool {
	switch r {
	case RulePermissive:
		if alive {
			return neighbors >= 1 && neighbors <= 5
		}
		return neighbors == 3
	default:
		if alive {
			return neighbors == 2 || neighbors == 3
		}
		return neighbors == 3
	}
}

// Neighbors counts the live cells among the eight positions around (x, y).
// Positions outside the grid read the nearest edge cell, so an edge cell
// may be counted more than once.
func Neighbors(g *core.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Survives reports whether the cell at (x, y) is alive in the next generation.
func Survives(g *core.Grid, x, y int, rule Rule) bool {
	return rule.Next(g.Get(x, y), Neighbors(g, x, y))
}

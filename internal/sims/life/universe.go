package life

import (
	"crypto/md5"
	"fmt"

	"golang.org/x/sync/errgroup"

	"pixlife/internal/core"
)

// Edge selects which cells the stepper evaluates.
type Edge uint8

const (
	// EdgeInterior evaluates only cells with 1 <= x < W-1 and 1 <= y < H-1.
	// Border cells of the next buffer keep whatever they held before.
	EdgeInterior Edge = iota
	// EdgeAll evaluates every cell with the clamped neighbour count.
	EdgeAll
)

func (e Edge) String() string {
	if e == EdgeAll {
		return "all"
	}
	return "interior"
}

// ParseEdge maps an edge policy name to its value.
func ParseEdge(s string) (Edge, error) {
	switch s {
	case "interior", "":
		return EdgeInterior, nil
	case "all":
		return EdgeAll, nil
	}
	return 0, fmt.Errorf("unknown edge policy %q", s)
}

const historySize = 5

// Universe owns the two ping-pong buffers of a simulation. Both are
// allocated once; Step only ever writes the buffer that is not current.
type Universe struct {
	grids [2]*core.Grid
	cur   int

	rule    Rule
	edge    Edge
	workers int

	generation int
	history    []string
}

// NewUniverse allocates two dead w x h grids.
func NewUniverse(w, h int, rule Rule) *Universe {
	return &Universe{
		grids:   [2]*core.Grid{core.NewGrid(w, h), core.NewGrid(w, h)},
		rule:    rule,
		workers: 1,
	}
}

// SetEdge changes which cells the stepper evaluates.
func (u *Universe) SetEdge(e Edge) { u.edge = e }

// SetWorkers sets how many row bands Step evaluates concurrently.
func (u *Universe) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	u.workers = n
}

// Generation returns how many steps have run since the last Reset.
func (u *Universe) Generation() int { return u.generation }

// Current returns the buffer holding the present generation.
func (u *Universe) Current() *core.Grid { return u.grids[u.cur] }

// Next returns the buffer the following generation will be written into.
func (u *Universe) Next() *core.Grid { return u.grids[1-u.cur] }

// Reset clears both buffers and makes grid 0 current again.
func (u *Universe) Reset() {
	u.grids[0].Clear()
	u.grids[1].Clear()
	u.cur = 0
	u.generation = 0
	u.history = u.history[:0]
}

// Step advances the universe by one generation and swaps the buffers.
func (u *Universe) Step() {
	cur, next := u.Current(), u.Next()
	x0, y0, x1, y1 := 1, 1, cur.W-1, cur.H-1
	if u.edge == EdgeAll {
		x0, y0, x1, y1 = 0, 0, cur.W, cur.H
	}

	if u.workers <= 1 || y1-y0 < 2 {
		u.stepRows(cur, next, x0, x1, y0, y1)
	} else {
		u.stepBands(cur, next, x0, x1, y0, y1)
	}

	u.cur = 1 - u.cur
	u.generation++
}

func (u *Universe) stepRows(cur, next *core.Grid, x0, x1, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			next.Set(x, y, Survives(cur, x, y, u.rule))
		}
	}
}

// stepBands splits the row range across workers. Bands only read cur and
// write disjoint rows of next, so the result matches stepRows exactly.
func (u *Universe) stepBands(cur, next *core.Grid, x0, x1, y0, y1 int) {
	var (
		eg            errgroup.Group
		rows          = y1 - y0
		rowsPerWorker = (rows + u.workers - 1) / u.workers
	)
	for i := range u.workers {
		start := y0 + i*rowsPerWorker
		end := min(start+rowsPerWorker, y1)
		if start >= y1 {
			break
		}
		eg.Go(func() error {
			u.stepRows(cur, next, x0, x1, start, end)
			return nil
		})
	}
	_ = eg.Wait()
}

// Hash returns an MD5 digest of the current buffer.
func (u *Universe) Hash() string {
	return fmt.Sprintf("%x", md5.Sum(u.Current().Cells()))
}

// Record appends the current buffer's hash to the stagnation history.
func (u *Universe) Record() {
	u.history = append(u.history, u.Hash())
	if len(u.history) > historySize {
		u.history = u.history[1:]
	}
}

// Stagnant reports whether the current buffer matches one of the two most
// recently recorded generations, which catches still lifes and period-2
// oscillators. The current generation must not have been recorded yet.
func (u *Universe) Stagnant() bool {
	if len(u.history) < 2 {
		return false
	}
	h := u.Hash()
	n := len(u.history)
	return u.history[n-1] == h || u.history[n-2] == h
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"pixlife/internal/app"
	"pixlife/internal/core"
	"pixlife/internal/sims/life"
)

type runResult struct {
	seed       int64
	generation int
	population int
	reason     string
	stats      *core.Stats
}

func (r runResult) String() string {
	return fmt.Sprintf("seed=%d gen=%d pop=%d avg=%.1f gps=%.1f runtime=%.1fs stop=%s",
		r.seed, r.generation, r.population, r.stats.AveragePopulation, r.stats.GenerationsPerSecond,
		r.stats.Runtime().Seconds(), r.reason)
}

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 0
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 500, "generations to simulate per universe")
	seeds := flag.String("seeds", "", "comma-separated seeds, one universe each (default: one drawn from the system)")
	every := flag.Int("log-every", 50, "log progress every N generations, 0 to disable")
	flag.Parse()

	seedList, err := parseSeeds(*seeds)
	if err != nil {
		log.Fatalf("seeds: %+v", err)
	}
	if len(seedList) == 0 {
		seedList = []int64{cfg.ResolveSeed()}
	}
	sims := make([]*life.Life, len(seedList))
	for i, seed := range seedList {
		if sims[i], err = newLife(cfg); err != nil {
			log.Fatalf("sim: %+v", err)
		}
		sims[i].Reset(seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := make([]runResult, len(seedList))
	eg, ctx := errgroup.WithContext(ctx)
	for i, seed := range seedList {
		eg.Go(func() error {
			r, err := run(ctx, sims[i], seed, *steps, cfg.TPS, *every)
			results[i] = r
			return err
		})
	}
	err = eg.Wait()
	for _, r := range results {
		if r.stats != nil {
			log.Print(r)
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("run: %+v", err)
	}
}

func parseSeeds(s string) ([]int64, error) {
	var out []int64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid seed %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// newLife builds a universe through the sim registry. The runner reads
// population and stagnation off the universe, so only life is accepted.
func newLife(cfg *app.Config) (*life.Life, error) {
	sim, err := cfg.NewSim()
	if err != nil {
		return nil, err
	}
	l, ok := sim.(*life.Life)
	if !ok {
		return nil, errors.Errorf("sim %q has no universe to run headless", sim.Name())
	}
	return l, nil
}

// run steps one independent universe, already reset with seed, until steps
// generations have passed, it dies out or it settles into a still life or
// period-2 oscillator.
func run(ctx context.Context, sim *life.Life, seed int64, steps, tps, every int) (runResult, error) {
	u := sim.Universe()
	pace := core.NewFixedStep(tps)
	res := runResult{seed: seed, reason: "steps", stats: core.NewStats()}

	for u.Generation() < steps {
		pop := u.Current().Population()
		if pop == 0 {
			res.reason = "extinct"
			break
		}
		if u.Stagnant() {
			res.reason = "stagnant"
			break
		}
		u.Record()

		start := time.Now()
		u.Step()
		res.stats.Update(u.Generation(), pop, time.Since(start))
		if every > 0 && u.Generation()%every == 0 {
			log.Printf("[seed %d] gen %d pop %d", seed, u.Generation(), u.Current().Population())
		}
		if err := pace.Wait(ctx); err != nil {
			res.reason = "interrupted"
			res.generation, res.population = u.Generation(), u.Current().Population()
			return res, errors.Wrapf(err, "seed %d", seed)
		}
	}
	res.generation, res.population = u.Generation(), u.Current().Population()
	return res, nil
}

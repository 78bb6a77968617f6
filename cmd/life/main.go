//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"pixlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lc, err := cfg.LifeConfig()
	if err != nil {
		log.Fatalf("config: %+v", err)
	}
	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatalf("sim: %+v", err)
	}
	seed := cfg.ResolveSeed()
	sim.Reset(seed)

	game := app.New(sim, lc.CellSize, cfg.TPS, seed, lc.Pausable, cfg.HUD)
	w, h := game.ScreenSize()

	ebiten.SetWindowTitle("pixlife — " + sim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	log.Print("run")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("video: %v", err)
	}
}

// Command rotterm runs the rotation automaton in the terminal. Without -w/-h
// the grid is sized to fit the terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"rotca/internal/app"
	"rotca/internal/core"
	"rotca/internal/sims/rotation"
	"rotca/internal/terminal"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 0, 0
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	start := time.Now()
	engine, err := run(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("stopped after %d generations in %v", engine.Generations(), time.Since(start).Round(time.Millisecond))
}

func run(cfg *app.Config) (*rotation.Engine, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	fitW, fitH := terminal.GridSize(cols, rows)
	if cfg.Width <= 0 {
		cfg.Width = fitW
	}
	if cfg.Height <= 0 {
		cfg.Height = fitH
	}

	rng := core.NewRNG(cfg.Seed)
	var grid *rotation.Grid
	if cfg.Circle {
		grid = rotation.NewCircular(cfg.Width, cfg.Height, cfg.Radius, cfg.Fill, rng)
	} else {
		grid = rotation.New(cfg.Width, cfg.Height, cfg.Fill, rng)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := &terminal.Driver{
		Screen:   screen,
		Engine:   rotation.NewEngine(grid),
		Interval: core.NewFixedStep(cfg.TPS).Interval(),
	}
	return d.Engine, d.Run(ctx)
}

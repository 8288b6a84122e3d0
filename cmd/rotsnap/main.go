// Command rotsnap runs the rotation automaton headlessly for a number of
// generations and writes the final grid as a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"rotca/internal/app"
	"rotca/internal/sims/rotation"
	"rotca/internal/snapshot"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	gens := flag.Int("gens", 100, "generations to run before the snapshot")
	out := flag.String("o", "rotation.png", "output PNG path")
	verbose := flag.Bool("v", false, "log renderer diagnostics")
	flag.Parse()

	if *verbose {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	sim := rotation.NewSim(rotation.FromMap(cfg.SimOptions()))
	engine := sim.Engine()
	for i := 0; i < *gens; i++ {
		engine.Generation()
	}

	grid := sim.Grid()
	opts := snapshot.DefaultOptions()
	opts.Scale = cfg.Scale
	if err := snapshot.SavePNG(*out, grid, opts); err != nil {
		log.Fatal(err)
	}
	c := grid.Center()
	log.Printf("wrote %s: %dx%d, %d generations, %d alive, center %d,%d",
		*out, grid.Width(), grid.Height(), engine.Generations(), grid.Alive(), c.Row, c.Col)
}

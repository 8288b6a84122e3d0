// Package snapshot renders a rotation grid to a still image.
package snapshot

import (
	"fmt"

	"github.com/gogpu/gg"

	"rotca/internal/sims/rotation"
)

// Options controls the cell size and colors of a snapshot.
type Options struct {
	Scale  int
	Alive  gg.RGBA
	Dead   gg.RGBA
	Center gg.RGBA
}

// DefaultOptions returns light cells on black with a red center marker.
func DefaultOptions() Options {
	return Options{
		Scale:  4,
		Alive:  gg.Hex("#e6e6e6"),
		Dead:   gg.Hex("#000000"),
		Center: gg.Hex("#ff3c3c"),
	}
}

// Render draws g with each cell as a Scale x Scale square. The caller owns the
// returned context and must Close it.
func Render(g *rotation.Grid, opts Options) (*gg.Context, error) {
	s := opts.Scale
	if s <= 0 {
		s = 1
	}
	dc := gg.NewContext(g.Width()*s, g.Height()*s)
	dc.ClearWithColor(opts.Dead)

	side := float64(s)
	dc.SetColor(opts.Alive.Color())
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.ValueAt(row, col) {
				dc.DrawRectangle(float64(col)*side, float64(row)*side, side, side)
			}
		}
	}
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("fill cells: %w", err)
	}

	c := g.Center()
	dc.SetColor(opts.Center.Color())
	dc.DrawRectangle(float64(c.Col)*side, float64(c.Row)*side, side, side)
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("fill center: %w", err)
	}
	return dc, nil
}

// SavePNG renders g and writes it to path.
func SavePNG(path string, g *rotation.Grid, opts Options) error {
	dc, err := Render(g, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

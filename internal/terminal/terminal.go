// Package terminal draws a rotation grid on a character terminal and drives
// the automaton from the terminal's event loop.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"rotca/internal/sims/rotation"
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	centerStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorMaroon)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// GridSize returns the grid that fits a cols x rows terminal when every cell
// takes two columns and three rows are kept for the status line and margin.
func GridSize(cols, rows int) (width, height int) {
	return (cols - 2) / 2, rows - 3
}

// Draw paints g onto screen, two columns per cell, followed by a status line.
// The center cell is highlighted whether or not it is alive.
func Draw(screen tcell.Screen, e *rotation.Engine) {
	g := e.Grid()
	screen.Clear()
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			alive := g.ValueAt(row, col)
			glyph, style := ' ', tcell.StyleDefault
			if alive {
				glyph, style = '▒', aliveStyle
			}
			if g.IsCenter(row, col) {
				style = centerStyle
			}
			screen.SetContent(2*col, row, glyph, nil, style)
			screen.SetContent(2*col+1, row, glyph, nil, style)
		}
	}
	c := g.Center()
	status := fmt.Sprintf("gen %d  phase %v  alive %d  center %d,%d  q quits",
		e.Generations(), e.Next(), g.Alive(), c.Row, c.Col)
	drawString(screen, 0, g.Height(), status, statusStyle)
	screen.Show()
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Driver runs half-steps on an engine and redraws after each one.
type Driver struct {
	Screen   tcell.Screen
	Engine   *rotation.Engine
	Interval time.Duration
}

// Run advances the automaton every Interval until the user presses q, Esc or
// Ctrl-C, or ctx is done. Each tick is one half-step, so phase A and phase B
// are each followed by a redraw.
func (d *Driver) Run(ctx context.Context) error {
	interval := d.Interval
	if interval <= 0 {
		interval = time.Millisecond
	}
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := d.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	Draw(d.Screen, d.Engine)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventResize:
				d.Screen.Sync()
			}
		case <-ticker.C:
			d.Engine.HalfStep()
			Draw(d.Screen, d.Engine)
		}
	}
}

package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"rotca/internal/sims/rotation"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func TestGridSize(t *testing.T) {
	w, h := GridSize(82, 27)
	if w != 40 || h != 24 {
		t.Fatalf("GridSize(82,27) = %d,%d, want 40,24", w, h)
	}
}

func TestDrawCellsAndCenter(t *testing.T) {
	s := newScreen(t, 20, 8)
	g := rotation.New(4, 4, 0, nil)
	g.Set(0, 0, true)
	g.Set(2, 2, true)
	e := rotation.NewEngine(g)

	Draw(s, e)

	cells, width, _ := s.GetContents()
	at := func(x, y int) tcell.SimCell { return cells[y*width+x] }

	for _, x := range []int{0, 1} {
		if r := at(x, 0).Runes; len(r) == 0 || r[0] != '▒' {
			t.Fatalf("alive cell (0,0) column %d drew %q", x, r)
		}
	}
	if r := at(2*3, 0).Runes; len(r) != 0 && r[0] != ' ' {
		t.Fatalf("dead cell (0,3) drew %q", r)
	}
	if at(2*1, 1).Style != centerStyle || at(2*1+1, 1).Style != centerStyle {
		t.Fatal("center cell (1,1) should use the center style")
	}
	if at(0, 0).Style != aliveStyle {
		t.Fatal("alive non-center cell should use the alive style")
	}
	if r := at(0, 4).Runes; len(r) == 0 || r[0] != 'g' {
		t.Fatalf("expected status line on row 4, got %q", r)
	}
}

func TestDriverQuitsOnKey(t *testing.T) {
	s := newScreen(t, 20, 8)
	e := rotation.NewEngine(rotation.New(4, 4, 0, nil))
	d := &Driver{Screen: s, Engine: e, Interval: time.Hour}

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- d.Run(context.Background()) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop on q")
	}
}

func TestDriverAdvancesUntilCanceled(t *testing.T) {
	s := newScreen(t, 20, 8)
	g := rotation.New(4, 4, 0, nil)
	g.Set(1, 1, true)
	e := rotation.NewEngine(g)
	d := &Driver{Screen: s, Engine: e, Interval: time.Millisecond}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.Generations() == 0 && e.Next() == rotation.PhaseA {
		t.Fatal("expected at least one half-step")
	}
	if g.Alive() != 1 {
		t.Fatalf("live cell count changed to %d", g.Alive())
	}
}

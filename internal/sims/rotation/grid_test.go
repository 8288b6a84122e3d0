package rotation

import (
	"errors"
	"slices"
	"testing"

	"rotca/internal/core"
)

func sameCells(a, b [][]bool) bool {
	return slices.EqualFunc(a, b, func(x, y []bool) bool { return slices.Equal(x, y) })
}

func gridWith(t *testing.T, w, h int, alive ...Point) *Grid {
	t.Helper()
	g := New(w, h, 0, nil)
	for _, p := range alive {
		g.Set(p.Row, p.Col, true)
	}
	return g
}

func alivePoints(g *Grid) []Point {
	var pts []Point
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.ValueAt(row, col) {
				pts = append(pts, Point{Row: row, Col: col})
			}
		}
	}
	return pts
}

func TestNewNormalizesDimensions(t *testing.T) {
	cases := []struct{ w, h, wantW, wantH int }{
		{7, 5, 6, 4},
		{8, 6, 8, 6},
		{1, -3, 2, 2},
		{0, 0, 2, 2},
	}
	for _, tc := range cases {
		g := New(tc.w, tc.h, 0, nil)
		if g.Width() != tc.wantW || g.Height() != tc.wantH {
			t.Fatalf("New(%d,%d) gave %dx%d, want %dx%d", tc.w, tc.h, g.Width(), g.Height(), tc.wantW, tc.wantH)
		}
		rows := g.Cells()
		if len(rows) != tc.wantH {
			t.Fatalf("expected %d rows, got %d", tc.wantH, len(rows))
		}
		for _, line := range rows {
			if len(line) != tc.wantW {
				t.Fatalf("expected rows of %d cells, got %d", tc.wantW, len(line))
			}
		}
	}
}

func TestValueAtToroidalPeriodicity(t *testing.T) {
	g := New(6, 4, 0.5, core.NewRNG(7))
	w, h := g.Width(), g.Height()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			want := g.ValueAt(row, col)
			for _, k := range []int{-3, -1, 1, 2} {
				for _, m := range []int{-2, -1, 1, 4} {
					if got := g.ValueAt(row+k*h, col+m*w); got != want {
						t.Fatalf("ValueAt(%d,%d) != ValueAt(%d,%d)", row, col, row+k*h, col+m*w)
					}
				}
			}
		}
	}
}

func TestPartitionReassembleRoundTrip(t *testing.T) {
	g := New(10, 8, 0.4, core.NewRNG(3))
	before := g.Cells()

	if err := g.Reassemble(g.Partition(0)); err != nil {
		t.Fatalf("reassemble: %v", err)
	}
	if !sameCells(before, g.Cells()) {
		t.Fatal("offset-0 partition followed by reassemble changed the grid")
	}
}

func TestPartitionBlockLayout(t *testing.T) {
	g := gridWith(t, 4, 4, Point{0, 0}, Point{0, 3}, Point{1, 2})

	sub := g.Partition(0)
	if len(sub) != 2 || len(sub[0]) != 2 {
		t.Fatalf("expected 2x2 subgrid, got %dx%d", len(sub), len(sub[0]))
	}
	if want := (Block{TopLeft: true}); sub[0][0] != want {
		t.Fatalf("block (0,0) = %v, want %v", sub[0][0], want)
	}
	if want := (Block{TopRight: true, BottomLeft: true}); sub[0][1] != want {
		t.Fatalf("block (0,1) = %v, want %v", sub[0][1], want)
	}
}

func TestPartitionOffsetOneWraps(t *testing.T) {
	g := gridWith(t, 4, 4, Point{0, 0})

	sub := g.Partition(1)
	for y := range sub {
		for x := range sub[y] {
			want := Block{}
			if y == 1 && x == 1 {
				want[BottomRight] = true
			}
			if sub[y][x] != want {
				t.Fatalf("block (%d,%d) = %v, want %v", y, x, sub[y][x], want)
			}
		}
	}
}

func TestReassembleRejectsWrongShape(t *testing.T) {
	g := gridWith(t, 4, 4, Point{1, 1})
	before := g.Cells()

	if err := g.Reassemble(newSubgrid(1, 2)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch for short subgrid, got %v", err)
	}
	if err := g.Reassemble(newSubgrid(2, 3)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch for wide subgrid, got %v", err)
	}
	if !sameCells(before, g.Cells()) {
		t.Fatal("rejected reassemble modified the grid")
	}
}

func TestReplaceAllDimensionMismatch(t *testing.T) {
	g := New(4, 4, 0.5, core.NewRNG(11))
	before := g.Cells()

	short := make([][]bool, 3)
	for i := range short {
		short[i] = make([]bool, 4)
	}
	if err := g.ReplaceAll(short); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch for wrong row count, got %v", err)
	}

	ragged := [][]bool{make([]bool, 4), make([]bool, 4), make([]bool, 5), make([]bool, 4)}
	if err := g.ReplaceAll(ragged); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch for wrong row length, got %v", err)
	}

	if !sameCells(before, g.Cells()) {
		t.Fatal("failed ReplaceAll modified the grid")
	}
}

func TestReplaceAllCopiesInput(t *testing.T) {
	g := New(2, 2, 0, nil)
	rows := [][]bool{{true, false}, {false, true}}
	if err := g.ReplaceAll(rows); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	rows[0][0] = false

	if !g.ValueAt(0, 0) || !g.ValueAt(1, 1) || g.ValueAt(0, 1) {
		t.Fatal("grid must hold its own copy of the replacement rows")
	}

	out := g.Cells()
	out[1][1] = false
	if !g.ValueAt(1, 1) {
		t.Fatal("Cells must return a copy")
	}
}

func TestInitializeFullFill(t *testing.T) {
	g := New(6, 6, 1.0, core.NewRNG(5))
	if got := g.Alive(); got != 36 {
		t.Fatalf("fill 1.0 should set every cell, got %d alive", got)
	}
	g.Initialize(0, core.NewRNG(5))
	if got := g.Alive(); got != 0 {
		t.Fatalf("fill 0 should clear every cell, got %d alive", got)
	}
}

func TestInitializeCircularRadiusZero(t *testing.T) {
	for _, size := range [][2]int{{2, 2}, {10, 8}, {64, 32}} {
		g := NewCircular(size[0], size[1], 0, 1.0, core.NewRNG(1))
		if got := g.Alive(); got != 0 {
			t.Fatalf("radius 0 on %dx%d left %d cells alive", size[0], size[1], got)
		}
	}
}

func TestInitializeCircularQuarterDisk(t *testing.T) {
	g := NewCircular(8, 8, 3, 1.0, core.NewRNG(1))
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			want := row*row+col*col < 9
			if got := g.ValueAt(row, col); got != want {
				t.Fatalf("cell (%d,%d) alive=%v, want %v", row, col, got, want)
			}
		}
	}
	if got := g.Alive(); got != 9 {
		t.Fatalf("expected 9 cells inside radius 3, got %d", got)
	}
}

func TestInitializeCircularConsumesSameDraws(t *testing.T) {
	full := New(8, 8, 0.5, core.NewRNG(21))
	disk := NewCircular(8, 8, 100, 0.5, core.NewRNG(21))
	if !sameCells(full.Cells(), disk.Cells()) {
		t.Fatal("a disk covering the grid should match the unrestricted fill")
	}
}

func TestShiftToroidal(t *testing.T) {
	g := gridWith(t, 4, 4, Point{3, 3})

	g.ShiftToroidal(1, 1)
	if pts := alivePoints(g); !slices.Equal(pts, []Point{{0, 0}}) {
		t.Fatalf("after (1,1) shift alive = %v, want [(0,0)]", pts)
	}

	g.ShiftToroidal(-1, 2)
	if pts := alivePoints(g); !slices.Equal(pts, []Point{{3, 2}}) {
		t.Fatalf("after (-1,2) shift alive = %v, want [(3,2)]", pts)
	}
}

func TestGridString(t *testing.T) {
	g := gridWith(t, 2, 2, Point{0, 1})
	want := "  ▒▒\n    \n"
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

package rotation

import (
	"fmt"
	"strings"

	"rotca/internal/core"
)

// Source yields independent uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

// Point is a (row, column) grid coordinate.
type Point struct {
	Row, Col int
}

// Grid is a toroidal matrix of alive/dead cells whose sides are always even,
// so it tiles exactly into 2x2 blocks. A Grid is meant for a single owner.
type Grid struct {
	w, h  int
	cells []bool
	spare []bool

	center Point
	stale  bool
}

// New returns a width x height grid where each cell is alive with probability
// fill. Dimensions are truncated to even values of at least 2. A nil src
// yields an empty grid.
func New(width, height int, fill float64, src Source) *Grid {
	g := newGrid(width, height)
	g.Initialize(fill, src)
	return g
}

// NewCircular is like New but only cells inside the quarter disk of the given
// radius around the origin may be alive.
func NewCircular(width, height, radius int, fill float64, src Source) *Grid {
	g := newGrid(width, height)
	g.InitializeCircular(radius, fill, src)
	return g
}

func newGrid(width, height int) *Grid {
	w, h := evenSize(width), evenSize(height)
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]bool, w*h),
		spare: make([]bool, w*h),
	}
}

func evenSize(n int) int {
	n &^= 1
	if n < 2 {
		return 2
	}
	return n
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Initialize refills every cell with an independent Bernoulli(fill) draw.
func (g *Grid) Initialize(fill float64, src Source) {
	g.fill(fill, src, func(int, int) bool { return true })
}

// InitializeCircular refills the grid like Initialize, but a cell at
// (row, col) can only be alive when row²+col² < radius². Every cell still
// consumes one draw so the sequence matches Initialize.
func (g *Grid) InitializeCircular(radius int, fill float64, src Source) {
	r2 := radius * radius
	g.fill(fill, src, func(row, col int) bool { return row*row+col*col < r2 })
}

func (g *Grid) fill(p float64, src Source, inside func(row, col int) bool) {
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			alive := false
			if src != nil {
				alive = src.Float64() < p && inside(row, col)
			}
			g.cells[row*g.w+col] = alive
		}
	}
	g.stale = true
}

func (g *Grid) index(row, col int) int {
	return core.Wrap(row, g.h)*g.w + core.Wrap(col, g.w)
}

// ValueAt reports whether the cell at the toroidal position (row, col) is alive.
func (g *Grid) ValueAt(row, col int) bool {
	return g.cells[g.index(row, col)]
}

// Set stores v at the toroidal position (row, col).
func (g *Grid) Set(row, col int, v bool) {
	g.cells[g.index(row, col)] = v
	g.stale = true
}

// Alive returns the number of live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

// Cells returns a copy of the grid as rows of booleans.
func (g *Grid) Cells() [][]bool {
	rows := make([][]bool, g.h)
	for r := range rows {
		rows[r] = append([]bool(nil), g.cells[r*g.w:(r+1)*g.w]...)
	}
	return rows
}

// ReplaceAll overwrites every cell with a copy of rows. The grid is left
// untouched and ErrDimensionMismatch is returned when the shape differs.
func (g *Grid) ReplaceAll(rows [][]bool) error {
	if len(rows) != g.h {
		return fmt.Errorf("%w: got %d rows, want %d", ErrDimensionMismatch, len(rows), g.h)
	}
	for r, line := range rows {
		if len(line) != g.w {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, r, len(line), g.w)
		}
	}
	for r, line := range rows {
		copy(g.cells[r*g.w:(r+1)*g.w], line)
	}
	g.stale = true
	return nil
}

// Partition copies the grid into 2x2 blocks whose top-left corners sit at
// (offset+2y, offset+2x). Positions wrap, so any offset is accepted.
func (g *Grid) Partition(offset int) Subgrid {
	sub := newSubgrid(g.h/2, g.w/2)
	for y := range sub {
		row := offset + 2*y
		for x := range sub[y] {
			col := offset + 2*x
			sub[y][x] = Block{
				TopLeft:     g.ValueAt(row, col),
				TopRight:    g.ValueAt(row, col+1),
				BottomLeft:  g.ValueAt(row+1, col),
				BottomRight: g.ValueAt(row+1, col+1),
			}
		}
	}
	return sub
}

// Reassemble writes every block back at offset 0, block (y, x) covering rows
// 2y..2y+1 and columns 2x..2x+1.
func (g *Grid) Reassemble(sub Subgrid) error {
	if len(sub) != g.h/2 {
		return fmt.Errorf("%w: got %d block rows, want %d", ErrDimensionMismatch, len(sub), g.h/2)
	}
	for y, line := range sub {
		if len(line) != g.w/2 {
			return fmt.Errorf("%w: block row %d has %d blocks, want %d", ErrDimensionMismatch, y, len(line), g.w/2)
		}
	}
	g.reassemble(sub)
	return nil
}

func (g *Grid) reassemble(sub Subgrid) {
	for y, line := range sub {
		top := 2 * y * g.w
		bottom := top + g.w
		for x, b := range line {
			col := 2 * x
			g.cells[top+col] = b[TopLeft]
			g.cells[top+col+1] = b[TopRight]
			g.cells[bottom+col] = b[BottomLeft]
			g.cells[bottom+col+1] = b[BottomRight]
		}
	}
	g.stale = true
}

// ShiftToroidal circularly moves every cell dy rows down and dx columns right.
func (g *Grid) ShiftToroidal(dy, dx int) {
	for row := 0; row < g.h; row++ {
		dst := core.Wrap(row+dy, g.h) * g.w
		for col := 0; col < g.w; col++ {
			g.spare[dst+core.Wrap(col+dx, g.w)] = g.cells[row*g.w+col]
		}
	}
	g.cells, g.spare = g.spare, g.cells
	g.stale = true
}

// String draws the grid one line per row, two characters per cell.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.h * (2*g.w*len("▒") + 1))
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			if g.cells[row*g.w+col] {
				sb.WriteString("▒▒")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

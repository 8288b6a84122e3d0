package rotation

import "math"

// Centroid returns the mean position of all live cells, each component
// rounded half to even. ErrDegenerateCentroid is returned for an empty grid.
func (g *Grid) Centroid() (Point, error) {
	var sumRow, sumCol, n int
	for row := 0; row < g.h; row++ {
		base := row * g.w
		for col := 0; col < g.w; col++ {
			if g.cells[base+col] {
				sumRow += row
				sumCol += col
				n++
			}
		}
	}
	if n == 0 {
		return Point{}, ErrDegenerateCentroid
	}
	return Point{
		Row: int(math.RoundToEven(float64(sumRow) / float64(n))),
		Col: int(math.RoundToEven(float64(sumCol) / float64(n))),
	}, nil
}

// Center returns the cached centroid, recomputing it if the grid changed
// since the last read. An empty grid keeps the previous center.
func (g *Grid) Center() Point {
	if g.stale {
		if p, err := g.Centroid(); err == nil {
			g.center = p
		}
		g.stale = false
	}
	return g.center
}

// IsCenter reports whether the toroidal position (row, col) is the center cell.
func (g *Grid) IsCenter(row, col int) bool {
	c := g.Center()
	return g.index(row, col) == c.Row*g.w+c.Col
}

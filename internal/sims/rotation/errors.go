package rotation

import "errors"

var (
	// ErrDimensionMismatch is returned when replacement cells or a subgrid do
	// not match the grid's declared shape.
	ErrDimensionMismatch = errors.New("rotation: dimension mismatch")
	// ErrDegenerateCentroid is returned when no cell is alive.
	ErrDegenerateCentroid = errors.New("rotation: no live cells for centroid")
	// ErrPhaseOrder is returned when a half-step is requested out of turn.
	ErrPhaseOrder = errors.New("rotation: phase out of order")
)

package rotation

// Block is a 2x2 cell group addressed by TopLeft, TopRight, BottomLeft and
// BottomRight.
type Block [4]bool

const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// CountAlive returns the number of live cells in the block.
func (b Block) CountAlive() int {
	n := 0
	for _, v := range b {
		if v {
			n++
		}
	}
	return n
}

// Rotate relabels the four corners one step around the block: each corner
// takes the value of its clockwise neighbour, so contents travel
// counter-clockwise.
func (b Block) Rotate() Block {
	return Block{
		TopLeft:     b[TopRight],
		TopRight:    b[BottomRight],
		BottomLeft:  b[TopLeft],
		BottomRight: b[BottomLeft],
	}
}

// Apply is the local update rule: a block with a single live cell rotates,
// every other block is returned unchanged.
func Apply(b Block) Block {
	if b.CountAlive() == 1 {
		return b.Rotate()
	}
	return b
}

// Subgrid is a full partition of a grid into blocks, indexed [blockRow][blockCol].
type Subgrid [][]Block

func newSubgrid(rows, cols int) Subgrid {
	sub := make(Subgrid, rows)
	backing := make([]Block, rows*cols)
	for y := range sub {
		sub[y] = backing[y*cols : (y+1)*cols : (y+1)*cols]
	}
	return sub
}

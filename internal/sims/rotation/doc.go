// Package rotation implements the single-rotation block cellular automaton.
//
// The grid is a torus of alive/dead cells tiled into 2x2 blocks. Each half-step
// partitions the grid at offset 0 (phase A) or offset 1 (phase B), and every
// block holding exactly one live cell rotates that cell one corner around the
// block. Blocks with any other occupancy are left alone. The two partitions must
// alternate for the Margolus scheme to hold; Engine tracks which phase is due.
package rotation

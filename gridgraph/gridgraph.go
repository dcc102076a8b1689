package gridgraph

// offsets4 lists row/col deltas in expansion order: up, down, left, right.
var offsets4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NewGridGraph constructs a height×width lattice.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(1).
func NewGridGraph(height, width int) (*GridGraph, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}

	return &GridGraph{
		Height:          height,
		Width:           width,
		neighborOffsets: offsets4,
	}, nil
}

// InBounds reports whether c lies within [0,Height)×[0,Width).
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.Height && c.Col >= 0 && c.Col < gg.Width
}

// NeighborOffsets returns the precomputed (dRow, dCol) offsets in expansion order.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [4][2]int {
	return gg.neighborOffsets
}

// Neighbors returns the in-bounds 4-neighbors of c in expansion order
// (up, down, left, right). Off-grid neighbors are omitted.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if gg.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Size returns the number of cells, Height×Width.
func (gg *GridGraph) Size() int {
	return gg.Height * gg.Width
}

// Index maps c to its row-major index: Row*Width + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (gg *GridGraph) Index(c Cell) int {
	return c.Row*gg.Width + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{Row: idx / gg.Width, Col: idx % gg.Width}
}

// Cells returns every cell in row-major order.
// Complexity: O(W×H).
func (gg *GridGraph) Cells() []Cell {
	out := make([]Cell, 0, gg.Size())
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			out = append(out, Cell{Row: r, Col: c})
		}
	}

	return out
}

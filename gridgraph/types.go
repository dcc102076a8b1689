package gridgraph

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyGrid indicates the lattice has no rows or no columns.
var ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")

// Cell addresses a single block of the lattice by row and column.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether o is a 4-neighbor of c.
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

// MarshalJSON encodes the cell as a two-element array [row, col].
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON decodes a two-element array [row, col].
func (c *Cell) UnmarshalJSON(data []byte) error {
	var rc [2]int
	if err := json.Unmarshal(data, &rc); err != nil {
		return fmt.Errorf("gridgraph: cell must be [row, col]: %w", err)
	}
	c.Row, c.Col = rc[0], rc[1]

	return nil
}

// GridGraph is an immutable Height×Width lattice with 4-connectivity.
// Rows grow downwards, columns grow to the right.
type GridGraph struct {
	Height, Width   int
	neighborOffsets [4][2]int
}

// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/citywalk/gridgraph"
)

// ExampleGridGraph_Neighbors shows the fixed expansion order and hard edges.
// Scenario:
//
//   - 6×6 city lattice.
//   - Interior cell (2,3) has all four neighbors: up, down, left, right.
//   - Corner cell (0,0) only has down and right.
func ExampleGridGraph_Neighbors() {
	gg, _ := gridgraph.NewGridGraph(6, 6)

	fmt.Println(gg.Neighbors(gridgraph.Cell{Row: 2, Col: 3}))
	fmt.Println(gg.Neighbors(gridgraph.Cell{Row: 0, Col: 0}))
	// Output:
	// [(1,3) (3,3) (2,2) (2,4)]
	// [(1,0) (0,1)]
}

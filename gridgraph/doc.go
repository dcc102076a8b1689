// Package gridgraph treats a fixed rectangular city lattice as a graph,
// the substrate for entered-cell shortest-path searches.
//
// What:
//
//   - GridGraph describes a Height×Width lattice of cells addressed by Cell{Row, Col}.
//   - Neighbors follow 4-connectivity in a fixed order: up, down, left, right.
//   - The lattice has hard edges: no wrap-around, off-grid cells simply do not exist.
//   - Cells map to a dense row-major index so searches can keep per-cell state in slices.
//
// Why:
//
//   - City blocks: street intersections laid out as rows ("Calle") and columns ("Cra").
//   - Search bookkeeping: distance and predecessor arrays sized W×H, no hashing.
//
// Complexity:
//
//   - NewGridGraph: O(1).
//   - InBounds, Index, Coordinate: O(1).
//   - Neighbors: O(d) with d = 4.
//   - Cells: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: height or width is not positive.
//
// A GridGraph is immutable once built and safe for concurrent readers.
package gridgraph

// Package dijkstra provides Dijkstra's shortest-path search specialised for
// city lattices, where the price of a step is attributed to the block being
// entered rather than to an edge.
//
// Overview:
//
//   - ShortestPath computes one minimum-cost route between two cells of a
//     gridgraph.GridGraph in O(V log V) time, V = W×H.
//   - A min-heap keyed by (distance, insertion sequence) always expands the next
//     closest cell; ties go to the cell discovered first.
//   - The search exits as soon as the end cell is settled.
//   - The start cell's own weight is never charged; a route from a cell to
//     itself costs 0.
//
// Key features:
//
//   - Functional options tune behavior without changing the API signature.
//   - MaxDistance: abandons exploration beyond a distance budget.
//   - Impassable: treats heavy cells as walls (e.g. closed blocks).
//   - OnVisit: observes every settled cell; may abort with an error.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilWeight: missing inputs.
//   - ErrOutOfBounds: start or end not on the grid.
//   - ErrNonPositiveWeight: a traversable cell weighs <= 0.
//   - ErrUnreachable: the end cell was never settled; no partial path is returned.
//
// API reference:
//
//	func ShortestPath(
//	    g *gridgraph.GridGraph,
//	    start, end gridgraph.Cell,
//	    weight WeightFunc,
//	    opts ...Option,
//	) (Result, error)
//
// Thread safety:
//
//   - ShortestPath allocates all search state per call. Concurrent calls on the
//     same GridGraph are safe as long as weight is safe for concurrent use.
package dijkstra

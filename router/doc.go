// Package router answers walking-time questions for the two travelers of a
// city: the fastest route for one traveler between two blocks, and, for a
// named destination, which traveler has to leave home earlier and by how
// many minutes so that both arrive together.
//
// What:
//
//   - City is the immutable configuration: lattice, tier rules, travelers and
//     named destinations. It is validated once by NewCity (fail fast).
//   - ShortestPath runs an entered-cell Dijkstra search for one traveler.
//   - ComputeTrajectories runs one search per traveler and compares them.
//
// Errors:
//
//   - ErrInvalidDestination: unknown destination name; no search is run.
//   - ErrUnreachable: the search ended without reaching the end block.
//   - ErrInvalidCoordinate: a start, destination or query block is off the grid.
//   - ErrUnknownTraveler, ErrInvalidTraveler, ErrNilGrid: bad inputs.
//
// A City holds no mutable state; every query allocates its own search state,
// so a single City may serve any number of goroutines.
package router

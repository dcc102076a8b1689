package router

import "errors"

// Sentinel errors for router operations.
var (
	// ErrInvalidDestination indicates the destination name is not configured.
	ErrInvalidDestination = errors.New("router: unknown destination")
	// ErrUnreachable indicates no route exists between the two blocks.
	ErrUnreachable = errors.New("router: destination unreachable")
	// ErrInvalidCoordinate indicates a block outside the grid bounds.
	ErrInvalidCoordinate = errors.New("router: coordinate outside grid")
	// ErrUnknownTraveler indicates the traveler ID is not configured.
	ErrUnknownTraveler = errors.New("router: unknown traveler")
	// ErrInvalidTraveler indicates an empty or duplicated traveler ID.
	ErrInvalidTraveler = errors.New("router: traveler IDs must be non-empty and distinct")
	// ErrNilGrid indicates NewCity was given no lattice.
	ErrNilGrid = errors.New("router: grid is nil")
)

package router

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citywalk/dijkstra"
	"github.com/katalvlaran/citywalk/gridgraph"
)

// Route is an ordered list of blocks, both endpoints included, and the total
// walking time in minutes. Each step costs the tier price of the block
// entered; the first block is free.
type Route struct {
	Path []gridgraph.Cell `json:"path"`
	Cost int64            `json:"cost"`
}

// ShortestPath returns the fastest route from start to end for traveler id.
//
// Errors: ErrUnknownTraveler, ErrInvalidCoordinate, ErrUnreachable (also
// matching dijkstra.ErrUnreachable).
func (c *City) ShortestPath(start, end gridgraph.Cell, id TravelerID) (Route, error) {
	weight, err := c.model.Weight(id)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownTraveler, id)
	}
	for _, cell := range []gridgraph.Cell{start, end} {
		if !c.grid.InBounds(cell) {
			return Route{}, fmt.Errorf("%w: %v on %dx%d grid", ErrInvalidCoordinate, cell, c.grid.Height, c.grid.Width)
		}
	}

	res, err := dijkstra.ShortestPath(c.grid, start, end, weight, c.searchOpts...)
	if err != nil {
		if errors.Is(err, dijkstra.ErrUnreachable) {
			return Route{}, fmt.Errorf("%w: traveler %q: %w", ErrUnreachable, id, err)
		}
		return Route{}, fmt.Errorf("router: traveler %q: %w", id, err)
	}
	c.logger.Debug("route computed",
		"traveler", string(id),
		"from", start.String(),
		"to", end.String(),
		"cost", res.Cost,
		"steps", len(res.Path)-1,
		"settled", res.Settled,
	)

	return Route{Path: res.Path, Cost: res.Cost}, nil
}

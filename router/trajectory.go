package router

import (
	"fmt"

	"github.com/katalvlaran/citywalk/gridgraph"
)

// Leg is one traveler's route to a destination.
type Leg struct {
	Traveler TravelerID `json:"traveler"`
	Route
}

// Trajectories is the answer to "who has to leave first to get there?".
// Earlier is empty when both travelers take the same time; Delta is then 0.
type Trajectories struct {
	Destination string         `json:"destination"`
	Target      gridgraph.Cell `json:"target"`
	A           Leg            `json:"a"`
	B           Leg            `json:"b"`
	Earlier     TravelerID     `json:"earlier,omitempty"`
	Delta       int64          `json:"delta_minutes"`
}

// Simultaneous reports whether both travelers may leave at the same time.
func (t Trajectories) Simultaneous() bool { return t.Earlier == "" }

// Compare decides who departs earlier. When a takes longer than b, b is
// named with delta a.Cost-b.Cost; when b takes longer, a is named with
// b.Cost-a.Cost. Equal costs name nobody and return 0.
func Compare(a, b Leg) (earlier TravelerID, delta int64) {
	switch {
	case a.Cost > b.Cost:
		return b.Traveler, a.Cost - b.Cost
	case b.Cost > a.Cost:
		return a.Traveler, b.Cost - a.Cost
	default:
		return "", 0
	}
}

// ComputeTrajectories routes both travelers from their homes to the named
// destination and compares the walking times. An unknown name fails with
// ErrInvalidDestination before any search runs.
func (c *City) ComputeTrajectories(destination string) (Trajectories, error) {
	target, ok := c.destinations[destination]
	if !ok {
		return Trajectories{}, fmt.Errorf("%w: %q", ErrInvalidDestination, destination)
	}

	var legs [2]Leg
	for i, t := range c.travelers {
		route, err := c.ShortestPath(t.Start, target, t.ID)
		if err != nil {
			return Trajectories{}, fmt.Errorf("destination %q: %w", destination, err)
		}
		legs[i] = Leg{Traveler: t.ID, Route: route}
	}

	earlier, delta := Compare(legs[0], legs[1])
	c.logger.Debug("trajectories computed",
		"destination", destination,
		"earlier", string(earlier),
		"delta", delta,
	)

	return Trajectories{
		Destination: destination,
		Target:      target,
		A:           legs[0],
		B:           legs[1],
		Earlier:     earlier,
		Delta:       delta,
	}, nil
}

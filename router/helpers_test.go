package router_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citywalk/costmodel"
	"github.com/katalvlaran/citywalk/gridgraph"
	"github.com/katalvlaran/citywalk/router"
)

const (
	javier   router.TravelerID = "Javier"
	andreina router.TravelerID = "Andreína"
)

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

// referenceTravelers are the two pedestrians of the 6×6 reference city.
func referenceTravelers() [2]router.Traveler {
	return [2]router.Traveler{
		{ID: javier, Start: cell(4, 4), Costs: costmodel.CostTable{Normal: 4, PoorSidewalk: 6, Commercial: 8}},
		{ID: andreina, Start: cell(2, 3), Costs: costmodel.CostTable{Normal: 6, PoorSidewalk: 8, Commercial: 10}},
	}
}

func referenceDestinations() map[string]gridgraph.Cell {
	return map[string]gridgraph.Cell{
		"The Darkness": cell(0, 4),
		"La Pasión":    cell(4, 1),
		"Mi Rolita":    cell(0, 2),
	}
}

// referenceCity builds the 6×6 reference city: rows 2–4 poor sidewalks,
// column 1 commercial.
func referenceCity(t testing.TB, opts ...router.Option) *router.City {
	t.Helper()
	g, err := gridgraph.NewGridGraph(6, 6)
	require.NoError(t, err)
	c, err := router.NewCity(g, costmodel.Rows(2, 4), costmodel.Cols(1, 1),
		referenceTravelers(), referenceDestinations(), opts...)
	require.NoError(t, err)

	return c
}

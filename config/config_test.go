package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citywalk/config"
	"github.com/katalvlaran/citywalk/costmodel"
	"github.com/katalvlaran/citywalk/gridgraph"
	"github.com/katalvlaran/citywalk/router"
)

// TestDefault_ReferenceCity checks the embedded file decodes to the
// reference city and reproduces the La Pasión scenario.
func TestDefault_ReferenceCity(t *testing.T) {
	f, err := config.Default()
	require.NoError(t, err)
	assert.Equal(t, 6, f.Grid.Height)
	assert.Equal(t, 6, f.Grid.Width)
	require.Len(t, f.Travelers, 2)
	assert.Equal(t, "Javier", f.Travelers[0].ID)
	assert.Equal(t, config.Coord{2, 3}, f.Travelers[1].Start)
	assert.Equal(t, costmodel.CostTable{Normal: 6, PoorSidewalk: 8, Commercial: 10}, f.Travelers[1].Costs)
	assert.Equal(t, config.Coord{4, 1}, f.Destinations["La Pasión"])

	city, err := f.Build()
	require.NoError(t, err)

	m := city.Model()
	assert.Equal(t, costmodel.PoorSidewalk, m.Classify(gridgraph.Cell{Row: 3, Col: 1}))
	assert.Equal(t, costmodel.Commercial, m.Classify(gridgraph.Cell{Row: 5, Col: 1}))
	assert.Equal(t, costmodel.Normal, m.Classify(gridgraph.Cell{Row: 5, Col: 5}))

	tr, err := city.ComputeTrajectories("La Pasión")
	require.NoError(t, err)
	assert.Equal(t, int64(18), tr.A.Cost)
	assert.Equal(t, int64(32), tr.B.Cost)
	assert.Equal(t, router.TravelerID("Javier"), tr.Earlier)
	assert.Equal(t, int64(14), tr.Delta)
}

const travelerLines = `travelers:
  - {id: P, start: [0, 0], costs: {normal: 1, poor_sidewalk: 2, commercial: 3}}
  - {id: Q, start: [2, 2], costs: {normal: 1, poor_sidewalk: 2, commercial: 3}}
`

const twoTravelers = "grid: {height: 3, width: 3}\n" + travelerLines

func TestParse_TierForms(t *testing.T) {
	f, err := config.Parse([]byte(twoTravelers + `
destinations: {Centro: [1, 1]}
tiers:
  poor_sidewalk:
    cells: [[0, 2], [2, 0]]
  commercial:
    rows: [[1, 1]]
    cols: [[0, 0]]
`))
	require.NoError(t, err)
	city, err := f.Build()
	require.NoError(t, err)

	m := city.Model()
	assert.Equal(t, costmodel.PoorSidewalk, m.Classify(gridgraph.Cell{Row: 2, Col: 0}), "poor wins over commercial column")
	assert.Equal(t, costmodel.Commercial, m.Classify(gridgraph.Cell{Row: 1, Col: 2}))
	assert.Equal(t, costmodel.Commercial, m.Classify(gridgraph.Cell{Row: 0, Col: 0}))
	assert.Equal(t, costmodel.Normal, m.Classify(gridgraph.Cell{Row: 0, Col: 1}))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"ShortCoord", twoTravelers + "destinations: {X: [1]}\n", config.ErrBadCoord},
		{"NotACoord", twoTravelers + "destinations: {X: here}\n", config.ErrBadCoord},
		{"ReversedRange", twoTravelers + "tiers: {commercial: {rows: [[2, 1]]}}\n", config.ErrBadRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Parse([]byte(twoTravelers + "weather: rainy\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestBuild_Errors(t *testing.T) {
	three := twoTravelers + "  - {id: R, start: [1, 1], costs: {normal: 1, poor_sidewalk: 2, commercial: 3}}\n"
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"ThreeTravelers", three, config.ErrTravelerCount},
		{"NoTravelers", "grid: {height: 2, width: 2}\n", config.ErrTravelerCount},
		{"EmptyGrid", "grid: {height: 0, width: 2}\n" + travelerLines, gridgraph.ErrEmptyGrid},
		{"DestinationOffGrid", twoTravelers + "destinations: {Lejos: [3, 0]}\n", router.ErrInvalidCoordinate},
		{"ZeroCost", "grid: {height: 2, width: 2}\ntravelers:\n" +
			"  - {id: P, start: [0, 0], costs: {normal: 0, poor_sidewalk: 2, commercial: 3}}\n" +
			"  - {id: Q, start: [1, 1], costs: {normal: 1, poor_sidewalk: 2, commercial: 3}}\n", costmodel.ErrNonPositiveCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := config.Parse([]byte(tc.doc))
			require.NoError(t, err)
			_, err = f.Build()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "city.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoTravelers), 0o600))

	f, err := config.Load(path)
	require.NoError(t, err)
	city, err := f.Build()
	require.NoError(t, err)
	assert.Empty(t, city.Destinations())

	r, err := city.ShortestPath(gridgraph.Cell{}, gridgraph.Cell{Row: 2, Col: 2}, "P")
	require.NoError(t, err)
	assert.Equal(t, int64(4), r.Cost)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

package router

import (
	"fmt"
	"sort"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/citywalk/costmodel"
	"github.com/katalvlaran/citywalk/dijkstra"
	"github.com/katalvlaran/citywalk/gridgraph"
)

// TravelerID names a traveler.
type TravelerID = costmodel.TravelerID

// Traveler is a pedestrian with a fixed home block and a per-tier price table.
type Traveler struct {
	ID    TravelerID          `json:"id"`
	Start gridgraph.Cell      `json:"start"`
	Costs costmodel.CostTable `json:"costs"`
}

// Destination is a named landmark.
type Destination struct {
	Name string         `json:"name"`
	Cell gridgraph.Cell `json:"cell"`
}

// City is the read-only configuration every query runs against.
type City struct {
	grid         *gridgraph.GridGraph
	model        *costmodel.Model
	travelers    [2]Traveler
	destinations map[string]gridgraph.Cell
	logger       *slog.Logger
	searchOpts   []dijkstra.Option
}

// Option configures a City at construction.
type Option func(*City)

// WithLogger sets the logger used for per-query debug records.
// Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *City) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSearchOptions appends options passed to every dijkstra.ShortestPath call,
// e.g. dijkstra.WithOnVisit for instrumentation.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(c *City) {
		c.searchOpts = append(c.searchOpts, opts...)
	}
}

// NewCity validates and snapshots the configuration.
//
// Validation (in order):
//  1. grid must be non-nil (ErrNilGrid).
//  2. traveler IDs must be non-empty and distinct (ErrInvalidTraveler).
//  3. every traveler cost table must be positive (costmodel.ErrNonPositiveCost).
//  4. every traveler start must lie on the grid (ErrInvalidCoordinate).
//  5. every destination must be named and lie on the grid (ErrInvalidCoordinate).
func NewCity(
	grid *gridgraph.GridGraph,
	poor, commercial costmodel.Rule,
	travelers [2]Traveler,
	destinations map[string]gridgraph.Cell,
	opts ...Option,
) (*City, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if travelers[0].ID == "" || travelers[1].ID == "" || travelers[0].ID == travelers[1].ID {
		return nil, fmt.Errorf("%w: %q, %q", ErrInvalidTraveler, travelers[0].ID, travelers[1].ID)
	}

	tables := make(map[TravelerID]costmodel.CostTable, len(travelers))
	for _, t := range travelers {
		if !grid.InBounds(t.Start) {
			return nil, fmt.Errorf("%w: traveler %q starts at %v on %dx%d grid",
				ErrInvalidCoordinate, t.ID, t.Start, grid.Height, grid.Width)
		}
		tables[t.ID] = t.Costs
	}
	model, err := costmodel.NewModel(poor, commercial, tables)
	if err != nil {
		return nil, err
	}

	dests := make(map[string]gridgraph.Cell, len(destinations))
	for name, cell := range destinations {
		if name == "" {
			return nil, fmt.Errorf("%w: destination at %v has no name", ErrInvalidDestination, cell)
		}
		if !grid.InBounds(cell) {
			return nil, fmt.Errorf("%w: destination %q at %v on %dx%d grid",
				ErrInvalidCoordinate, name, cell, grid.Height, grid.Width)
		}
		dests[name] = cell
	}

	c := &City{
		grid:         grid,
		model:        model,
		travelers:    travelers,
		destinations: dests,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Grid returns the lattice.
func (c *City) Grid() *gridgraph.GridGraph { return c.grid }

// Model returns the cost model.
func (c *City) Model() *costmodel.Model { return c.model }

// Travelers returns both travelers in configuration order (A, B).
func (c *City) Travelers() [2]Traveler { return c.travelers }

// Traveler looks up a traveler by ID.
func (c *City) Traveler(id TravelerID) (Traveler, bool) {
	for _, t := range c.travelers {
		if t.ID == id {
			return t, true
		}
	}

	return Traveler{}, false
}

// Destination looks up a destination block by name.
func (c *City) Destination(name string) (gridgraph.Cell, bool) {
	cell, ok := c.destinations[name]
	return cell, ok
}

// Destinations lists every destination sorted by name.
func (c *City) Destinations() []Destination {
	out := make([]Destination, 0, len(c.destinations))
	for name, cell := range c.destinations {
		out = append(out, Destination{Name: name, Cell: cell})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

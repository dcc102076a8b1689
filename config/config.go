// Package config loads a city description from YAML and turns it into a
// validated router.City.
//
// The reference city is embedded and available through Default.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/citywalk/costmodel"
	"github.com/katalvlaran/citywalk/gridgraph"
	"github.com/katalvlaran/citywalk/router"
)

//go:embed reference.yaml
var referenceYAML []byte

// Sentinel errors for configuration parsing and validation.
var (
	// ErrTravelerCount indicates the file does not list exactly two travelers.
	ErrTravelerCount = errors.New("config: exactly two travelers are required")
	// ErrBadCoord indicates a coordinate that is not a [row, col] pair.
	ErrBadCoord = errors.New("config: coordinate must be [row, col]")
	// ErrBadRange indicates a range that is not [from, to] with from <= to.
	ErrBadRange = errors.New("config: range must be [from, to] with from <= to")
)

//**********************************************************
// file layout
//**********************************************************

// File mirrors the YAML document.
type File struct {
	Grid struct {
		Height int `yaml:"height"`
		Width  int `yaml:"width"`
	} `yaml:"grid"`
	Travelers    []TravelerOptions `yaml:"travelers"`
	Destinations map[string]Coord  `yaml:"destinations"`
	Tiers        struct {
		PoorSidewalk TierOptions `yaml:"poor_sidewalk"`
		Commercial   TierOptions `yaml:"commercial"`
	} `yaml:"tiers"`
}

// TravelerOptions describes one pedestrian.
type TravelerOptions struct {
	ID    string              `yaml:"id"`
	Start Coord               `yaml:"start"`
	Costs costmodel.CostTable `yaml:"costs"`
}

// TierOptions lists tier members; all three forms are unioned.
type TierOptions struct {
	Cells []Coord `yaml:"cells"`
	Rows  []Range `yaml:"rows"`
	Cols  []Range `yaml:"cols"`
}

// Rule converts the options into a costmodel.Rule.
func (t TierOptions) Rule() costmodel.Rule {
	rules := make([]costmodel.Rule, 0, 1+len(t.Rows)+len(t.Cols))
	if len(t.Cells) > 0 {
		cells := make([]gridgraph.Cell, len(t.Cells))
		for i, c := range t.Cells {
			cells[i] = c.Cell()
		}
		rules = append(rules, costmodel.Cells(cells...))
	}
	for _, r := range t.Rows {
		rules = append(rules, costmodel.Rows(r[0], r[1]))
	}
	for _, r := range t.Cols {
		rules = append(rules, costmodel.Cols(r[0], r[1]))
	}

	return costmodel.AnyOf(rules...)
}

//**********************************************************
// scalar types
//**********************************************************

// Coord is a [row, col] pair.
type Coord [2]int

// Cell converts the pair to a gridgraph.Cell.
func (c Coord) Cell() gridgraph.Cell {
	return gridgraph.Cell{Row: c[0], Col: c[1]}
}

// UnmarshalYAML requires exactly two integers.
func (c *Coord) UnmarshalYAML(value *yaml.Node) error {
	var xs []int
	if err := value.Decode(&xs); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrBadCoord, value.Line, err)
	}
	if len(xs) != 2 {
		return fmt.Errorf("%w: line %d: got %d values", ErrBadCoord, value.Line, len(xs))
	}
	c[0], c[1] = xs[0], xs[1]

	return nil
}

// Range is an inclusive [from, to] interval.
type Range [2]int

// UnmarshalYAML requires exactly two integers in non-decreasing order.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	var xs []int
	if err := value.Decode(&xs); err != nil {
		return fmt.Errorf("%w: line %d: %v", ErrBadRange, value.Line, err)
	}
	if len(xs) != 2 || xs[0] > xs[1] {
		return fmt.Errorf("%w: line %d: got %v", ErrBadRange, value.Line, xs)
	}
	r[0], r[1] = xs[0], xs[1]

	return nil
}

//**********************************************************
// loading
//**********************************************************

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	return &f, nil
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Default returns the embedded reference city.
func Default() (*File, error) {
	return Parse(referenceYAML)
}

// Build validates the file and constructs the router.City. Coordinate
// problems surface as router.ErrInvalidCoordinate.
func (f *File) Build(opts ...router.Option) (*router.City, error) {
	if len(f.Travelers) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTravelerCount, len(f.Travelers))
	}
	grid, err := gridgraph.NewGridGraph(f.Grid.Height, f.Grid.Width)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var travelers [2]router.Traveler
	for i, t := range f.Travelers {
		travelers[i] = router.Traveler{
			ID:    router.TravelerID(t.ID),
			Start: t.Start.Cell(),
			Costs: t.Costs,
		}
	}
	dests := make(map[string]gridgraph.Cell, len(f.Destinations))
	for name, c := range f.Destinations {
		dests[name] = c.Cell()
	}

	city, err := router.NewCity(grid,
		f.Tiers.PoorSidewalk.Rule(),
		f.Tiers.Commercial.Rule(),
		travelers, dests, opts...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return city, nil
}

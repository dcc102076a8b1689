package costmodel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citywalk/gridgraph"
)

// Sentinel errors for costmodel operations.
var (
	// ErrUnknownTraveler indicates no cost table is registered for a traveler.
	ErrUnknownTraveler = errors.New("costmodel: unknown traveler")
	// ErrNonPositiveCost indicates a tier price <= 0.
	ErrNonPositiveCost = errors.New("costmodel: tier cost must be positive")
	// ErrUnknownTier indicates a tier name or value outside Normal/PoorSidewalk/Commercial.
	ErrUnknownTier = errors.New("costmodel: unknown tier")
)

// TravelerID names a traveler.
type TravelerID string

// CostTable holds one traveler's minutes per block for each tier.
type CostTable struct {
	Normal       int64 `json:"normal" yaml:"normal"`
	PoorSidewalk int64 `json:"poor_sidewalk" yaml:"poor_sidewalk"`
	Commercial   int64 `json:"commercial" yaml:"commercial"`
}

// Cost returns the price for tier t. Unknown tiers cost 0.
func (ct CostTable) Cost(t Tier) int64 {
	switch t {
	case Normal:
		return ct.Normal
	case PoorSidewalk:
		return ct.PoorSidewalk
	case Commercial:
		return ct.Commercial
	default:
		return 0
	}
}

// Validate reports ErrNonPositiveCost for the first tier priced <= 0.
func (ct CostTable) Validate() error {
	for _, t := range Tiers {
		if c := ct.Cost(t); c <= 0 {
			return fmt.Errorf("%w: %s=%d", ErrNonPositiveCost, t, c)
		}
	}

	return nil
}

// Model combines tier rules with per-traveler cost tables.
type Model struct {
	poor       Rule
	commercial Rule
	tables     map[TravelerID]CostTable
}

// NewModel validates and copies tables. Nil rules match nothing.
func NewModel(poor, commercial Rule, tables map[TravelerID]CostTable) (*Model, error) {
	if poor == nil {
		poor = None()
	}
	if commercial == nil {
		commercial = None()
	}
	m := &Model{
		poor:       poor,
		commercial: commercial,
		tables:     make(map[TravelerID]CostTable, len(tables)),
	}
	for id, ct := range tables {
		if err := ct.Validate(); err != nil {
			return nil, fmt.Errorf("traveler %q: %w", id, err)
		}
		m.tables[id] = ct
	}

	return m, nil
}

// Classify returns the tier of c: PoorSidewalk, then Commercial, then Normal.
func (m *Model) Classify(c gridgraph.Cell) Tier {
	if m.poor.Contains(c) {
		return PoorSidewalk
	}
	if m.commercial.Contains(c) {
		return Commercial
	}

	return Normal
}

// Table returns the cost table registered for id.
func (m *Model) Table(id TravelerID) (CostTable, bool) {
	ct, ok := m.tables[id]
	return ct, ok
}

// Cost returns the minutes traveler id needs to step onto c.
func (m *Model) Cost(c gridgraph.Cell, id TravelerID) (int64, error) {
	ct, ok := m.tables[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTraveler, id)
	}

	return ct.Cost(m.Classify(c)), nil
}

// Weight binds traveler id once and returns a per-cell price function
// suitable for dijkstra.ShortestPath.
func (m *Model) Weight(id TravelerID) (func(gridgraph.Cell) int64, error) {
	ct, ok := m.tables[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTraveler, id)
	}

	return func(c gridgraph.Cell) int64 {
		return ct.Cost(m.Classify(c))
	}, nil
}

package costmodel

import "fmt"

// Tier is the cost class of a block.
type Tier int

const (
	// Normal blocks have regular sidewalks.
	Normal Tier = iota
	// PoorSidewalk blocks have damaged or missing sidewalks.
	PoorSidewalk
	// Commercial blocks are crowded shopping streets.
	Commercial
)

// Tiers lists every tier in declaration order.
var Tiers = []Tier{Normal, PoorSidewalk, Commercial}

func (t Tier) String() string {
	switch t {
	case Normal:
		return "normal"
	case PoorSidewalk:
		return "poor_sidewalk"
	case Commercial:
		return "commercial"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// ParseTier is the inverse of Tier.String.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "normal":
		return Normal, nil
	case "poor_sidewalk":
		return PoorSidewalk, nil
	case "commercial":
		return Commercial, nil
	default:
		return Normal, fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	switch t {
	case Normal, PoorSidewalk, Commercial:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	v, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

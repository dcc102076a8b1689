package costmodel

import "github.com/katalvlaran/citywalk/gridgraph"

// Rule decides tier membership for a block.
type Rule interface {
	Contains(c gridgraph.Cell) bool
}

// RuleFunc adapts a predicate to a Rule.
type RuleFunc func(c gridgraph.Cell) bool

// Contains calls f(c).
func (f RuleFunc) Contains(c gridgraph.Cell) bool { return f(c) }

// cellSet is an explicit list of member blocks.
type cellSet map[gridgraph.Cell]struct{}

func (s cellSet) Contains(c gridgraph.Cell) bool {
	_, ok := s[c]
	return ok
}

// Cells returns a Rule matching exactly the given blocks.
func Cells(cells ...gridgraph.Cell) Rule {
	s := make(cellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}

	return s
}

// Rows returns a Rule matching every block whose row is in [from, to].
func Rows(from, to int) Rule {
	return RuleFunc(func(c gridgraph.Cell) bool {
		return c.Row >= from && c.Row <= to
	})
}

// Cols returns a Rule matching every block whose column is in [from, to].
func Cols(from, to int) Rule {
	return RuleFunc(func(c gridgraph.Cell) bool {
		return c.Col >= from && c.Col <= to
	})
}

// anyOf is the union of its members.
type anyOf []Rule

func (rs anyOf) Contains(c gridgraph.Cell) bool {
	for _, r := range rs {
		if r.Contains(c) {
			return true
		}
	}

	return false
}

// AnyOf returns the union of rules. Nil members are ignored; an empty
// union matches nothing.
func AnyOf(rules ...Rule) Rule {
	out := make(anyOf, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			out = append(out, r)
		}
	}

	return out
}

// None matches no block.
func None() Rule {
	return anyOf(nil)
}

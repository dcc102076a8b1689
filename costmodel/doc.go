// Package costmodel classifies city blocks into cost tiers and prices a step
// onto a block for a given traveler.
//
// Classification precedence is fixed: a block matched by the Poor-Sidewalk
// rule is PoorSidewalk; otherwise a block matched by the Commercial rule is
// Commercial; otherwise it is Normal. Rules may overlap; the order above is
// the tie-break.
//
// Prices are a plain lookup in each traveler's CostTable. No ordering between
// tiers is assumed, only that every price is strictly positive.
//
// A Model is immutable after NewModel and safe for concurrent readers.
package costmodel

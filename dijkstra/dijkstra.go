// Package dijkstra implements a label-setting shortest-path search on a
// gridgraph.GridGraph where each step costs the weight of the cell entered.
//
// Complexity:
//
//   - Time:  O(V log V) with V = W×H; each cell has at most 4 neighbors, so E = O(V).
//   - Space: O(V) for distance, predecessor and settled arrays plus the heap.
//
// Notes on implementation choices:
//
//   - Per-cell state lives in slices indexed by the grid's row-major index;
//     every call allocates its own, so concurrent searches share nothing.
//   - The heap is ordered by (distance, insertion sequence), so equal-distance
//     cells are expanded in the order they were discovered.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - The search stops as soon as the end cell is settled.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/citywalk/gridgraph"
)

// noPredecessor marks a cell with no recorded parent: the start cell, or a
// cell never discovered.
const noPredecessor = -1

// ShortestPath computes a minimum-cost route from start to end on g, where
// stepping onto cell c costs weight(c).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. weight must be non-nil (ErrNilWeight).
//  3. start and end must lie on g (ErrOutOfBounds).
//
// Returns ErrUnreachable if end is never settled, ErrNonPositiveWeight if a
// traversable cell weighs <= 0, or the wrapped OnVisit error.
// When start == end the result is the one-cell path with cost 0.
func ShortestPath(g *gridgraph.GridGraph, start, end gridgraph.Cell, weight WeightFunc, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}
	if weight == nil {
		return Result{}, ErrNilWeight
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v on %dx%d grid", ErrOutOfBounds, start, g.Height, g.Width)
	}
	if !g.InBounds(end) {
		return Result{}, fmt.Errorf("%w: end %v on %dx%d grid", ErrOutOfBounds, end, g.Height, g.Width)
	}

	n := g.Size()
	r := &runner{
		g:       g,
		weight:  weight,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(g.Index(start))

	target := g.Index(end)
	if err := r.process(target); err != nil {
		return Result{}, err
	}
	if !r.settled[target] {
		return Result{Settled: r.count}, fmt.Errorf("%w: %v → %v", ErrUnreachable, start, end)
	}

	return Result{
		Path:    r.path(target),
		Cost:    r.dist[target],
		Settled: r.count,
	}, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *gridgraph.GridGraph // The lattice; read-only.
	weight  WeightFunc           // Entered-cell cost.
	options Options              // Caps, walls and hook.
	dist    []int64              // Best known distance per cell; MaxInt64 = undiscovered.
	prev    []int                // Predecessor index per cell; noPredecessor if none.
	settled []bool               // Whether a cell's distance is final.
	pq      nodePQ               // Frontier.
	seq     uint64               // Insertion counter for stable tie-breaking.
	count   int                  // Number of settled cells.
}

// init marks every cell undiscovered and seeds the frontier with src at distance 0.
func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		r.prev[i] = noPredecessor
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	r.push(src, 0)
}

// push inserts idx with distance d, stamping the next insertion sequence.
func (r *runner) push(idx int, d int64) {
	heap.Push(&r.pq, &nodeItem{idx: idx, dist: d, seq: r.seq})
	r.seq++
}

// process is the main loop. It settles cells in increasing distance until the
// target is settled, the frontier is empty, or MaxDistance is exceeded.
func (r *runner) process(target int) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// Stale entry from lazy decrease-key.
		if r.settled[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.settled[u] = true
		r.count++

		if r.options.OnVisit != nil {
			c := r.g.Coordinate(u)
			if err := r.options.OnVisit(c, item.dist); err != nil {
				return fmt.Errorf("dijkstra: OnVisit error at %v: %w", c, err)
			}
		}

		if u == target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of each in-bounds neighbor of u,
// charging the neighbor's own weight.
func (r *runner) relax(u int) error {
	uc := r.g.Coordinate(u)
	du := r.dist[u]

	var vc gridgraph.Cell
	var v int
	var w, nd int64
	for _, d := range r.g.NeighborOffsets() {
		vc = gridgraph.Cell{Row: uc.Row + d[0], Col: uc.Col + d[1]}
		if !r.g.InBounds(vc) {
			continue
		}
		v = r.g.Index(vc)
		if r.settled[v] {
			continue
		}

		w = r.weight(vc)
		if w >= r.options.Impassable {
			continue
		}
		if w <= 0 {
			return fmt.Errorf("%w: cell %v weight=%d", ErrNonPositiveWeight, vc, w)
		}
		// Skip steps whose sum would overflow.
		if w > math.MaxInt64-du {
			continue
		}

		nd = du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}

	return nil
}

// path walks predecessors back from target until the sentinel, then reverses.
func (r *runner) path(target int) []gridgraph.Cell {
	var out []gridgraph.Cell
	for at := target; at != noPredecessor; at = r.prev[at] {
		out = append(out, r.g.Coordinate(at))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// nodeItem is a frontier entry: a cell index, its tentative distance and
// the order in which it was pushed.
type nodeItem struct {
	idx  int
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then seq.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances fall back to insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

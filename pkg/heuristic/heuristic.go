// Package heuristic maintains an admissible lower bound on the number of
// symbols still needed to reach the current goal, tightened every time the
// search proves a new milestone distance.
//
// The bound is indexed by how many permutations a candidate has seen. If the
// shortest path from the seed to reach k+1 permutations took D[k] symbols,
// then no state can gain k new permutations in fewer than D[k-1]+1 symbols:
// any string that does so, prefixed by the seed, would reveal k+1
// permutations within that many steps of a valid start. Gains are also
// superadditive, so the bound for a large gain is at least the best split
// into smaller ones.
package heuristic

import (
	"fmt"
	"slices"
)

// Heuristic is the adaptive lower-bound table. It is not safe for concurrent
// use; the search holds its own clone.
type Heuristic struct {
	start       int
	distances   []int
	lowerBounds []int
}

// Seed returns the heuristic for a search that starts with start
// permutations seen. Its goal is start+1.
func Seed(start int) *Heuristic {
	if start < 0 {
		panic(fmt.Sprintf("heuristic: negative start %d", start))
	}
	h := &Heuristic{start: start, distances: []int{0}}
	h.recompute()
	return h
}

// Start returns the permutation count of the seed.
func (h *Heuristic) Start() int { return h.start }

// Goal returns the permutation count the next search targets.
func (h *Heuristic) Goal() int { return h.start + len(h.distances) }

// Distances returns the proven shortest distances, distances[j] being the
// length from the seed to start+j permutations.
func (h *Heuristic) Distances() []int { return slices.Clone(h.distances) }

// LowerBounds returns the table indexed by permutation count in [0, Goal()].
// Entries are strictly decreasing and end at 0.
func (h *Heuristic) LowerBounds() []int { return slices.Clone(h.lowerBounds) }

// Cost returns the lower bound for a candidate that has seen perms
// permutations. It panics if perms is outside [0, Goal()].
func (h *Heuristic) Cost(perms int) int {
	if perms < 0 || perms >= len(h.lowerBounds) {
		panic(fmt.Sprintf("heuristic: permutation count %d outside [0, %d]", perms, h.Goal()))
	}
	return h.lowerBounds[perms]
}

// ImproveBasedOn records the proven distance to the current goal and moves
// the goal forward by one, recomputing the bound table.
func (h *Heuristic) ImproveBasedOn(distance int) {
	if last := h.distances[len(h.distances)-1]; distance < last {
		panic(fmt.Sprintf("heuristic: distance %d shorter than previous milestone %d", distance, last))
	}
	h.distances = append(h.distances, distance)
	h.recompute()
}

// Clone returns an independent copy.
func (h *Heuristic) Clone() *Heuristic {
	return &Heuristic{
		start:       h.start,
		distances:   slices.Clone(h.distances),
		lowerBounds: slices.Clone(h.lowerBounds),
	}
}

func (h *Heuristic) recompute() {
	goal := h.Goal()
	gains := make([]int, goal+1)
	for k := 1; k <= goal; k++ {
		var best int
		if k-1 < len(h.distances) {
			best = h.distances[k-1] + 1
		}
		for a := 1; a < k; a++ {
			best = max(best, gains[a]+gains[k-a])
		}
		gains[k] = best
	}
	bounds := make([]int, goal+1)
	for p := range bounds {
		bounds[p] = gains[goal-p]
	}
	h.lowerBounds = bounds
}

package search

import (
	"slices"

	"github.com/matzehuels/superperm/pkg/candidate"
)

// OpenSet is the search frontier: candidates bucketed by f-cost, then by
// g-cost. Costs are small non-negative integers, so buckets are indexed
// directly instead of going through a heap.
//
// Next prefers the lowest f, then the highest g (deepest candidate), then the
// most recently added candidate in that bucket.
type OpenSet struct {
	buckets [][][]candidate.Candidate // [f][g]
	counts  []int                     // entries per f
	minF    int                       // no entries below this f
	size    int
}

// NewOpenSet returns an empty frontier.
func NewOpenSet() *OpenSet {
	return &OpenSet{}
}

// Seed adds the starting candidate with g = 0 and f = 1.
func (o *OpenSet) Seed(c candidate.Candidate) {
	o.Add(c, 1, 0)
}

// Add inserts c at the given costs. Both costs must be non-negative.
func (o *OpenSet) Add(c candidate.Candidate, f, g int) {
	if f < 0 || g < 0 {
		panic("search: negative cost")
	}
	for len(o.buckets) <= f {
		o.buckets = append(o.buckets, nil)
		o.counts = append(o.counts, 0)
	}
	for len(o.buckets[f]) <= g {
		o.buckets[f] = append(o.buckets[f], nil)
	}
	o.buckets[f][g] = append(o.buckets[f][g], c)
	o.counts[f]++
	if o.size == 0 || f < o.minF {
		o.minF = f
	}
	o.size++
}

// Next removes and returns the preferred candidate and its g-cost.
// ok is false when the frontier is empty.
func (o *OpenSet) Next() (c candidate.Candidate, g int, ok bool) {
	if o.size == 0 {
		return candidate.Candidate{}, 0, false
	}
	f := o.minF
	for o.counts[f] == 0 {
		f++
	}
	o.minF = f

	gs := o.buckets[f]
	g = len(gs) - 1
	for len(gs[g]) == 0 {
		g--
	}
	last := len(gs[g]) - 1
	c = gs[g][last]
	gs[g][last] = candidate.Candidate{}
	gs[g] = gs[g][:last]
	o.buckets[f] = trimTail(gs)
	o.counts[f]--
	o.size--
	return c, g, true
}

// Len returns the number of entries.
func (o *OpenSet) Len() int { return o.size }

// MinimumFCost returns the lowest f-cost present.
func (o *OpenSet) MinimumFCost() (int, bool) {
	for f := o.minF; f < len(o.counts); f++ {
		if o.counts[f] > 0 {
			return f, true
		}
	}
	return 0, false
}

// MaximumFCost returns the highest f-cost present.
func (o *OpenSet) MaximumFCost() (int, bool) {
	for f := len(o.counts) - 1; f >= 0; f-- {
		if o.counts[f] > 0 {
			return f, true
		}
	}
	return 0, false
}

type entry struct {
	c candidate.Candidate
	g int
}

// ReindexByHCost rewrites every entry's f-cost from g+h to g+mapping[h],
// where h = f-g is the heuristic value it was inserted with. Values missing
// from mapping are kept. Entries are first detached and grouped by h, then
// merged back group by group in ascending h, so a new value that collides
// with an old one is never remapped twice. Order within a bucket survives.
func (o *OpenSet) ReindexByHCost(mapping map[int]int) {
	groups := make(map[int][]entry)
	for f, gs := range o.buckets {
		for g, list := range gs {
			for _, c := range list {
				groups[f-g] = append(groups[f-g], entry{c: c, g: g})
			}
		}
	}

	o.buckets, o.counts, o.minF, o.size = nil, nil, 0, 0

	keys := make([]int, 0, len(groups))
	for h := range groups {
		keys = append(keys, h)
	}
	slices.Sort(keys)
	for _, h := range keys {
		nh, ok := mapping[h]
		if !ok {
			nh = h
		}
		for _, e := range groups[h] {
			o.Add(e.c, e.g+nh, e.g)
		}
	}
}

func trimTail(gs [][]candidate.Candidate) [][]candidate.Candidate {
	for len(gs) > 0 && len(gs[len(gs)-1]) == 0 {
		gs = gs[:len(gs)-1]
	}
	return gs
}

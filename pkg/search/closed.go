package search

import "github.com/matzehuels/superperm/pkg/candidate"

// ClosedSet records the cheapest g-cost at which each candidate was expanded.
type ClosedSet struct {
	seen map[string]int
}

// NewClosedSet returns an empty closed set.
func NewClosedSet() *ClosedSet {
	return &ClosedSet{seen: make(map[string]int)}
}

// Add marks c as expanded at cost g, keeping the lower of g and any earlier cost.
func (s *ClosedSet) Add(c candidate.Candidate, g int) {
	k := c.Key()
	if prev, ok := s.seen[k]; ok && prev <= g {
		return
	}
	s.seen[k] = g
}

// Contains reports whether c was already expanded at a cost no greater than g.
// A cheaper arrival is not contained, so the candidate gets reopened.
func (s *ClosedSet) Contains(c candidate.Candidate, g int) bool {
	prev, ok := s.seen[c.Key()]
	return ok && prev <= g
}

// Len returns the number of distinct candidates closed.
func (s *ClosedSet) Len() int { return len(s.seen) }

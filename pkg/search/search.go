// Package search implements the best-first search for shortest strings that
// reveal a target number of permutations.
//
// A [Search] is long-lived: the incremental driver asks it for one goal after
// another, and the frontier and closed set carry over between goals. Only the
// heuristic changes, and [Search.UpdateHeuristic] rewrites the frontier's
// f-costs to match.
package search

import (
	"context"
	"fmt"

	"github.com/matzehuels/superperm/pkg/candidate"
	"github.com/matzehuels/superperm/pkg/heuristic"
)

// cancelCheckInterval is how many expansions pass between context checks.
const cancelCheckInterval = 1024

// Search owns a frontier, a closed set and its own copy of the heuristic.
// It is not safe for concurrent use.
type Search struct {
	open      *OpenSet
	closed    *ClosedSet
	heuristic *heuristic.Heuristic
	expanded  int
}

// New returns a search over the given sets. The heuristic is cloned.
func New(open *OpenSet, closed *ClosedSet, h *heuristic.Heuristic) *Search {
	return &Search{open: open, closed: closed, heuristic: h.Clone()}
}

// Seed places the starting candidate on the frontier at g = 0.
func (s *Search) Seed(c candidate.Candidate) {
	s.open.Add(c, s.heuristic.Cost(c.NumberOfPermutations()), 0)
}

// ShortestPath returns the length of the shortest expansion sequence from
// the seed to a candidate with goal permutations, and false if the frontier
// runs dry first. goal must equal the heuristic's goal.
func (s *Search) ShortestPath(goal int) (int, bool) {
	d, ok, _ := s.ShortestPathContext(context.Background(), goal)
	return d, ok
}

// ShortestPathContext is ShortestPath with cancellation. The context is
// polled between expansions; on cancellation the frontier and closed set are
// left consistent and the search may be resumed with the same goal.
func (s *Search) ShortestPathContext(ctx context.Context, goal int) (int, bool, error) {
	if goal != s.heuristic.Goal() {
		panic(fmt.Sprintf("search: goal %d does not match heuristic goal %d", goal, s.heuristic.Goal()))
	}

	for polls := 0; ; polls++ {
		if polls%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, false, err
			}
		}

		current, g, ok := s.open.Next()
		if !ok {
			return 0, false, nil
		}
		if s.closed.Contains(current, g) {
			continue
		}
		s.expanded++

		// All neighbours are queued and current is closed before returning.
		reached := false
		for symbol, n := 0, current.Expansions(); symbol < n; symbol++ {
			next := current.Expand(symbol)
			if s.closed.Contains(next, g+1) {
				continue
			}
			perms := next.NumberOfPermutations()
			if perms == goal {
				reached = true
			}
			s.open.Add(next, g+1+s.heuristic.Cost(perms), g+1)
		}
		s.closed.Add(current, g)

		if reached {
			return g + 1, true, nil
		}
	}
}

// UpdateHeuristic replaces the search's heuristic with a clone of h and
// re-keys the frontier from the old bounds to the new ones.
func (s *Search) UpdateHeuristic(h *heuristic.Heuristic) {
	next := h.Clone()
	oldBounds, newBounds := s.heuristic.LowerBounds(), next.LowerBounds()
	mapping := make(map[int]int, len(oldBounds))
	for i, n := 0, min(len(oldBounds), len(newBounds)); i < n; i++ {
		mapping[oldBounds[i]] = newBounds[i]
	}
	s.open.ReindexByHCost(mapping)
	s.heuristic = next
}

// Heuristic returns the heuristic the search currently uses.
func (s *Search) Heuristic() *heuristic.Heuristic { return s.heuristic }

// OpenLen returns the frontier size.
func (s *Search) OpenLen() int { return s.open.Len() }

// ClosedLen returns the number of closed candidates.
func (s *Search) ClosedLen() int { return s.closed.Len() }

// Expanded returns how many candidates have been expanded across all goals.
func (s *Search) Expanded() int { return s.expanded }

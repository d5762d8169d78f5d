// Package incremental drives a [search.Search] through every milestone
// goal, from one permutation past the seed up to all n! permutations.
//
// Each solved milestone is a proven shortest distance. It is fed back into
// the heuristic, which tightens the bounds for every later goal, and the
// search keeps its frontier and closed set across goals instead of starting
// over.
package incremental

import (
	"context"
	"time"

	"github.com/matzehuels/superperm/pkg/candidate"
	"github.com/matzehuels/superperm/pkg/heuristic"
	"github.com/matzehuels/superperm/pkg/observability"
	"github.com/matzehuels/superperm/pkg/search"
)

// Observer is called after every solved milestone, before the search picks
// up the improved heuristic. It must not retain s or h past the call.
type Observer func(distance, goal int, s *search.Search, h *heuristic.Heuristic)

// Driver runs the milestone loop.
type Driver struct {
	search    *search.Search
	heuristic *heuristic.Heuristic
}

// New returns a driver over an existing search and the heuristic it was
// built from. The driver owns h and hands clones to the search.
func New(s *search.Search, h *heuristic.Heuristic) *Driver {
	return &Driver{search: s, heuristic: h}
}

// FromSeed builds a fresh heuristic, frontier and closed set for seed.
func FromSeed(seed candidate.Candidate) *Driver {
	h := heuristic.Seed(seed.NumberOfPermutations())
	s := search.New(search.NewOpenSet(), search.NewClosedSet(), h)
	return New(s, h)
}

// Search returns the underlying search.
func (d *Driver) Search() *search.Search { return d.search }

// Heuristic returns the driver's heuristic.
func (d *Driver) Heuristic() *heuristic.Heuristic { return d.heuristic }

// ShortestPath seeds the search with c and solves every goal up to
// c.MaximumPermutations(). It returns the distance of the last goal, which
// is the superpermutation length minus the alphabet size, or false if some
// goal proved unreachable. onMilestone may be nil.
func (d *Driver) ShortestPath(c candidate.Candidate, onMilestone Observer) (int, bool) {
	dist, ok, _ := d.ShortestPathContext(context.Background(), c, onMilestone)
	return dist, ok
}

// ShortestPathContext is ShortestPath with cancellation. A cancelled run
// returns the context error together with the last solved distance.
func (d *Driver) ShortestPathContext(ctx context.Context, c candidate.Candidate, onMilestone Observer) (int, bool, error) {
	d.search.Seed(c)
	hooks := observability.Search()

	distance := 0
	for goal := d.heuristic.Start() + 1; goal <= c.MaximumPermutations(); goal++ {
		if err := ctx.Err(); err != nil {
			return distance, false, err
		}

		hooks.OnGoalStart(ctx, goal, d.search.OpenLen())
		start := time.Now()
		dist, found, err := d.search.ShortestPathContext(ctx, goal)
		hooks.OnGoalComplete(ctx, goal, observability.GoalStats{
			Distance: dist,
			Found:    found,
			Expanded: d.search.Expanded(),
			Open:     d.search.OpenLen(),
			Closed:   d.search.ClosedLen(),
			Duration: time.Since(start),
			Err:      err,
		})
		if err != nil {
			return distance, false, err
		}
		if !found {
			return distance, false, nil
		}

		distance = dist
		d.heuristic.ImproveBasedOn(dist)
		if onMilestone != nil {
			onMilestone(dist, goal, d.search, d.heuristic)
		}
		d.search.UpdateHeuristic(d.heuristic)
	}
	return distance, true, nil
}

package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/superperm/pkg/candidate"
	"github.com/matzehuels/superperm/pkg/heuristic"
	"github.com/matzehuels/superperm/pkg/symmetry"
)

func newSearch(n int) (*Search, *heuristic.Heuristic) {
	seed := candidate.Seed(symmetry.Precompute(n))
	h := heuristic.Seed(seed.NumberOfPermutations())
	s := New(NewOpenSet(), NewClosedSet(), h)
	s.Seed(seed)
	return s, h
}

func TestShortestPath_FirstGoal(t *testing.T) {
	s, _ := newSearch(4)
	d, ok := s.ShortestPath(2)
	require.True(t, ok)
	assert.Equal(t, 1, d)
	assert.Equal(t, 1, s.Expanded())
	assert.Equal(t, 1, s.ClosedLen())
	assert.Equal(t, 3, s.OpenLen())
}

func TestShortestPath_Milestones(t *testing.T) {
	s, h := newSearch(3)
	want := []int{1, 2, 4, 5, 6}
	for i, w := range want {
		goal := i + 2
		d, ok := s.ShortestPath(goal)
		require.True(t, ok, "goal %d", goal)
		require.Equal(t, w, d, "goal %d", goal)
		h.ImproveBasedOn(d)
		s.UpdateHeuristic(h)
	}
	assert.Equal(t, 7, s.Heuristic().Goal())
}

func TestShortestPath_Exhausted(t *testing.T) {
	h := heuristic.Seed(1)
	s := New(NewOpenSet(), NewClosedSet(), h)
	d, ok := s.ShortestPath(2)
	assert.False(t, ok)
	assert.Equal(t, 0, d)
}

func TestShortestPath_GoalMismatchPanics(t *testing.T) {
	s, _ := newSearch(4)
	assert.Panics(t, func() { s.ShortestPath(3) })
}

func TestShortestPathContext_Cancelled(t *testing.T) {
	s, _ := newSearch(4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := s.ShortestPathContext(ctx, 2)
	assert.False(t, ok)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, s.OpenLen(), "frontier untouched on cancellation")

	d, ok := s.ShortestPath(2)
	require.True(t, ok)
	assert.Equal(t, 1, d)
}

func TestUpdateHeuristic_OwnsClone(t *testing.T) {
	s, h := newSearch(4)
	_, ok := s.ShortestPath(2)
	require.True(t, ok)

	h.ImproveBasedOn(1)
	s.UpdateHeuristic(h)
	h.ImproveBasedOn(2)
	assert.Equal(t, 3, s.Heuristic().Goal(), "caller mutations must not leak into the search")
}

func TestUpdateHeuristic_Reindexes(t *testing.T) {
	s, h := newSearch(4)
	_, ok := s.ShortestPath(2)
	require.True(t, ok)

	// Frontier holds the three seed neighbours at g=1. Their perms are 2,1,1
	// with bounds [2 1 0] -> f = 1, 2, 2.
	lo, _ := s.open.MinimumFCost()
	hi, _ := s.open.MaximumFCost()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 2, hi)

	h.ImproveBasedOn(1)
	s.UpdateHeuristic(h)

	// New bounds [3 2 1 0]: f = 1+1 and 1+2.
	lo, _ = s.open.MinimumFCost()
	hi, _ = s.open.MaximumFCost()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 3, hi)
}

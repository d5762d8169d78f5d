package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	h := Seed(1)
	assert.Equal(t, 1, h.Start())
	assert.Equal(t, 2, h.Goal())
	assert.Equal(t, []int{0}, h.Distances())
	assert.Equal(t, []int{2, 1, 0}, h.LowerBounds())
}

func TestImproveBasedOn(t *testing.T) {
	h := Seed(1)
	steps := []struct {
		distance int
		bounds   []int
	}{
		{1, []int{3, 2, 1, 0}},
		{3, []int{5, 4, 2, 1, 0}},
		{4, []int{6, 5, 4, 2, 1, 0}},
	}
	for _, s := range steps {
		h.ImproveBasedOn(s.distance)
		assert.Equal(t, s.bounds, h.LowerBounds(), "after %d", s.distance)
	}
	assert.Equal(t, 5, h.Goal())
	assert.Equal(t, []int{0, 1, 3, 4}, h.Distances())
}

func TestLowerBounds_StrictlyDecreasing(t *testing.T) {
	h := Seed(1)
	for _, d := range []int{1, 2, 3, 5, 6, 7, 8, 10, 11, 12, 13, 15} {
		h.ImproveBasedOn(d)
		lb := h.LowerBounds()
		require.Equal(t, 0, lb[len(lb)-1])
		for i := 1; i < len(lb); i++ {
			require.Greater(t, lb[i-1], lb[i], "bounds %v", lb)
		}
	}
}

func TestImproveBasedOn_NeverLoosens(t *testing.T) {
	h := Seed(1)
	for _, d := range []int{1, 2, 3, 5, 6, 7, 8, 10} {
		before := h.LowerBounds()
		h.ImproveBasedOn(d)
		after := h.LowerBounds()
		// The goal moved forward, so no bound may shrink.
		for p := range before {
			assert.GreaterOrEqual(t, after[p], before[p], "p=%d", p)
		}
	}
}

func TestCost(t *testing.T) {
	h := Seed(1)
	assert.Equal(t, 2, h.Cost(0))
	assert.Equal(t, 0, h.Cost(2))
	assert.Panics(t, func() { h.Cost(3) })
	assert.Panics(t, func() { h.Cost(-1) })
}

func TestImproveBasedOn_PanicsOnRegression(t *testing.T) {
	h := Seed(1)
	h.ImproveBasedOn(3)
	assert.Panics(t, func() { h.ImproveBasedOn(2) })
}

func TestClone(t *testing.T) {
	h := Seed(1)
	c := h.Clone()
	h.ImproveBasedOn(1)
	assert.Equal(t, 2, c.Goal())
	assert.Equal(t, 3, h.Goal())
}

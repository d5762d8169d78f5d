package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/superperm/pkg/symmetry"
)

func TestSeed(t *testing.T) {
	for n := 2; n <= 6; n++ {
		c := Seed(symmetry.Precompute(n))
		assert.Equal(t, 1, c.NumberOfPermutations(), "n=%d", n)
		assert.Equal(t, n-1, c.NumberOfBits(), "n=%d", n)
		assert.Equal(t, n-1, c.Expansions())
		assert.Equal(t, n, c.Symbols())
	}
}

func TestSeed_FiveSymbols(t *testing.T) {
	c := Seed(symmetry.Precompute(5))
	assert.Equal(t, []uint32{0, 120, 121, 122}, c.Bits())
	assert.Equal(t, 123, c.MaximumBits())
	assert.Equal(t, 120, c.MaximumPermutations())
	assert.Equal(t, "[01234] counters=111", c.String())
}

func TestExpand_FiveSymbols(t *testing.T) {
	seed := Seed(symmetry.Precompute(5))

	tests := []struct {
		symbol int
		bits   []uint32
		seen   [][]int
	}{
		{0, []uint32{0, 96, 120, 121, 122}, [][]int{{0, 1, 2, 3, 4}, {4, 0, 1, 2, 3}}},
		{1, []uint32{18, 120, 121, 122}, [][]int{{0, 4, 1, 2, 3}}},
		{2, []uint32{4, 120, 121}, [][]int{{0, 1, 4, 2, 3}}},
		{3, []uint32{1, 120}, [][]int{{0, 1, 2, 4, 3}}},
	}
	for _, tt := range tests {
		c := seed.Expand(tt.symbol)
		assert.Equal(t, tt.bits, c.Bits(), "symbol %d", tt.symbol)
		assert.Equal(t, len(tt.bits), c.NumberOfBits())
		assert.Equal(t, tt.seen, c.Seen(), "symbol %d", tt.symbol)
	}
}

func TestExpand_PermutationCounts(t *testing.T) {
	c := Seed(symmetry.Precompute(5))
	symbols := []int{0, 0, 0, 0, 0, 1, 0, 1, 0, 2, 1, 0}
	want := []int{2, 3, 4, 5, 5, 5, 6, 6, 7, 7, 7, 8}
	for i, s := range symbols {
		c = c.Expand(s)
		require.Equal(t, want[i], c.NumberOfPermutations(), "after step %d", i)
	}
}

func TestExpand_Counters(t *testing.T) {
	seed := Seed(symmetry.Precompute(5))
	tests := []struct {
		name  string
		from  Candidate
		wants [][]bool
	}{
		{"seed", seed, [][]bool{
			{true, true, true}, {true, true, true}, {true, true, false}, {true, false, false},
		}},
		{"seed+2", seed.Expand(2), [][]bool{
			{true, true, true}, {true, true, true}, {true, true, false}, {true, false, false},
		}},
		{"seed+3", seed.Expand(3), [][]bool{
			{true, true, false}, {true, true, false}, {true, true, false}, {true, false, false},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for s, want := range tt.wants {
				assert.Equal(t, want, tt.from.Expand(s).CounterBits(), "symbol %d", s)
			}
		})
	}
}

func TestExpand_TwoSymbols(t *testing.T) {
	c := Seed(symmetry.Precompute(2))
	next := c.Expand(0)
	assert.Equal(t, 2, next.NumberOfPermutations())
	assert.Equal(t, []uint32{0, 1}, next.Bits())
	assert.Empty(t, next.CounterBits())
}

func TestExpand_PanicsOnBadSymbol(t *testing.T) {
	c := Seed(symmetry.Precompute(4))
	assert.Panics(t, func() { c.Expand(3) })
	assert.Panics(t, func() { c.Expand(-1) })
}

func TestCompare(t *testing.T) {
	seed := Seed(symmetry.Precompute(5))
	a, b, c := seed.Expand(0), seed.Expand(1), seed.Expand(2)

	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, -1, c.Compare(b))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(c))
	assert.Equal(t, 0, seed.Expand(0).Compare(a))
	assert.True(t, seed.Expand(0).Equal(a))
	assert.False(t, a.Equal(b))
}

func TestKey(t *testing.T) {
	seed := Seed(symmetry.Precompute(4))
	assert.Equal(t, seed.Expand(1).Key(), seed.Expand(1).Key())
	assert.NotEqual(t, seed.Expand(0).Key(), seed.Expand(1).Key())
}

func TestExpand_Immutable(t *testing.T) {
	seed := Seed(symmetry.Precompute(4))
	before := seed.Bits()
	seed.Expand(0)
	seed.Expand(2)
	assert.Equal(t, before, seed.Bits())
}

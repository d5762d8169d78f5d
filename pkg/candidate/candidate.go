// Package candidate defines the immutable search state: which permutations a
// string has revealed so far and how long its trailing run of distinct
// symbols is, expressed in canonical labelling.
//
// A Candidate does not remember the string itself. Two strings that reveal
// the same permutations and end in the same canonical suffix are the same
// candidate, which is what lets the search share work between them.
package candidate

import (
	"fmt"
	"strings"

	"github.com/matzehuels/superperm/pkg/intset"
	"github.com/matzehuels/superperm/pkg/perm"
	"github.com/matzehuels/superperm/pkg/symmetry"
)

// Candidate is a bit vector over the layout described in package symmetry.
// The zero value is not usable; start from [Seed].
type Candidate struct {
	table *symmetry.Table
	bits  *intset.Set
}

// Seed returns the candidate for the string 0 1 ... n-1: permutation 0 has
// been seen and every counter bit is set.
func Seed(table *symmetry.Table) Candidate {
	bits := intset.New(table.Capacity())
	bits.Insert(0)
	for i := table.Permutations(); i < table.Capacity(); i++ {
		bits.Insert(uint32(i))
	}
	return Candidate{table: table, bits: bits}
}

// Expand returns the candidate reached by appending symbol, relabelled back
// into canonical form. It panics if symbol is outside [0, Expansions()).
func (c Candidate) Expand(symbol int) Candidate {
	if symbol < 0 || symbol >= c.table.Expansions() {
		panic(fmt.Sprintf("candidate: symbol %d out of range [0, %d)", symbol, c.table.Expansions()))
	}
	mapping := c.table.Mapping(symbol, c.bits)
	bits := intset.New(c.table.Capacity())
	c.bits.Each(func(x uint32) bool {
		bits.Insert(mapping[x])
		return true
	})
	bits.Insert(c.table.GroundTruth())
	bits.Optimize()
	return Candidate{table: c.table, bits: bits}
}

// NumberOfBits returns the number of set bits, counters included.
func (c Candidate) NumberOfBits() int { return c.bits.Cardinality() }

// NumberOfPermutations returns how many distinct permutations have been seen.
func (c Candidate) NumberOfPermutations() int {
	return c.bits.CountRange(0, uint32(c.table.Permutations()))
}

// MaximumBits returns the bit capacity, n! + n - 2.
func (c Candidate) MaximumBits() int { return c.table.Capacity() }

// MaximumPermutations returns n!.
func (c Candidate) MaximumPermutations() int { return c.table.Permutations() }

// Expansions returns the number of symbols Expand accepts.
func (c Candidate) Expansions() int { return c.table.Expansions() }

// Symbols returns the alphabet size.
func (c Candidate) Symbols() int { return c.table.N() }

// Contains reports whether bit is set.
func (c Candidate) Contains(bit int) bool {
	return bit >= 0 && c.bits.Contains(uint32(bit))
}

// Bits returns the set bits in ascending order.
func (c Candidate) Bits() []uint32 { return c.bits.Values() }

// Seen returns the permutations revealed so far, in canonical labelling and
// ascending rank order.
func (c Candidate) Seen() [][]int {
	var seen [][]int
	limit := uint32(c.table.Permutations())
	c.bits.Each(func(x uint32) bool {
		if x >= limit {
			return false
		}
		seen = append(seen, perm.Unrank(int(x), c.table.N()))
		return true
	})
	return seen
}

// CounterBits returns the counter ladder, rung 0 first.
func (c Candidate) CounterBits() []bool {
	counters := make([]bool, c.table.Capacity()-c.table.Permutations())
	for i := range counters {
		counters[i] = c.bits.Contains(uint32(c.table.Permutations() + i))
	}
	return counters
}

// Compare orders candidates by their ascending set-bit sequences; a proper
// prefix sorts first. Candidates from different tables must not be compared.
func (c Candidate) Compare(o Candidate) int {
	return c.bits.Compare(o.bits)
}

// Equal reports whether both candidates have identical bits.
func (c Candidate) Equal(o Candidate) bool {
	return c.bits.Equal(o.bits)
}

// Key returns a canonical string suitable as a map key.
func (c Candidate) Key() string { return c.bits.Key() }

// String renders the candidate as its seen permutations followed by the
// counter ladder, e.g. "[01234 40123] counters=111".
func (c Candidate) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range c.Seen() {
		if i > 0 {
			b.WriteByte(' ')
		}
		for _, v := range p {
			fmt.Fprintf(&b, "%d", v)
		}
	}
	b.WriteString("] counters=")
	for _, on := range c.CounterBits() {
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

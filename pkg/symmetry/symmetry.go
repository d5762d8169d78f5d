// Package symmetry precomputes the relabellings that keep search candidates
// in canonical form.
//
// A candidate is always expressed in a frame where the most recent window of
// the string reads 0, 1, ..., n-1 and its trailing run of distinct symbols
// occupies the highest labels. Appending symbol s leaves that frame, so every
// set bit of the candidate is moved through a mapping that relabels the new
// window back into canonical form. Labels outside the trailing run are
// interchangeable, which yields several valid relabellings per symbol; the
// table picks one deterministically from the candidate's own bits.
//
// Bit layout for an alphabet of n symbols:
//
//	[0, n!)          permutation bits, indexed by lexicographic rank
//	[n!, n!+n-2)     counter ladder; bit n!+j set iff the trailing
//	                 distinct run is at least j+2 long
package symmetry

import (
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/superperm/pkg/intset"
	"github.com/matzehuels/superperm/pkg/perm"
)

// Table holds every relabelling for an alphabet size. It is immutable after
// [Precompute] and safe to share between goroutines.
type Table struct {
	n        int
	perms    int
	capacity int

	// mappings[s][c][bit] is the destination of bit under relabelling c of
	// symbol s; inverses[s][c] is the inverse restricted to permutation bits.
	mappings [][][]uint32
	inverses [][][]uint32
}

// Precompute builds the table for an alphabet of n symbols.
// It panics if n < 2 or the bit layout would not fit in uint32 indices.
func Precompute(n int) *Table {
	if n < 2 {
		panic(fmt.Sprintf("symmetry: alphabet size %d below 2", n))
	}
	if n > 12 || uint64(perm.Factorial(n)+n-2) > math.MaxUint32 {
		panic(fmt.Sprintf("symmetry: alphabet size %d too large", n))
	}

	t := &Table{
		n:        n,
		perms:    perm.Factorial(n),
		capacity: perm.Factorial(n) + n - 2,
	}
	permMaps := PermutationMappings(n)
	counterMaps := CounterMappings(n)

	for s := range permMaps {
		var full, inv [][]uint32
		for _, pm := range permMaps[s] {
			m := make([]uint32, 0, t.capacity)
			m = append(m, pm...)
			m = append(m, counterMaps[s]...)
			full = append(full, m)

			im := make([]uint32, len(pm))
			for from, to := range pm {
				im[to] = uint32(from)
			}
			inv = append(inv, im)
		}
		t.mappings = append(t.mappings, full)
		t.inverses = append(t.inverses, inv)
	}
	return t
}

// Transpositions returns, for every symbol s in [0, n-1), the relabellings
// applied after appending s. Each has the shape head ++ (s+1 .. n-1) ++ [s]
// where head ranges over the permutations of [0, s) in lexicographic order.
// Entry k of a relabelling is the old label that becomes label k.
func Transpositions(n int) [][][]int {
	result := make([][][]int, 0, n-1)
	for s := 0; s < n-1; s++ {
		heads := perm.Generate(s)
		group := make([][]int, 0, len(heads))
		for _, head := range heads {
			t := make([]int, 0, n)
			t = append(t, head...)
			for k := s + 1; k < n; k++ {
				t = append(t, k)
			}
			t = append(t, s)
			group = append(group, t)
		}
		result = append(result, group)
	}
	return result
}

// PermutationMappings lifts [Transpositions] to the permutation region:
// mapping[r] is the rank, in the new frame, of the permutation whose rank in
// the old frame is r.
func PermutationMappings(n int) [][][]uint32 {
	all := perm.Generate(n)
	trans := Transpositions(n)
	result := make([][][]uint32, len(trans))
	relabelled := make([]int, n)
	for s, group := range trans {
		for _, t := range group {
			inv := perm.Inverse(t)
			m := make([]uint32, len(all))
			for r, p := range all {
				for i, label := range p {
					relabelled[i] = inv[label]
				}
				m[r] = uint32(perm.Rank(relabelled))
			}
			result[s] = append(result[s], m)
		}
	}
	return result
}

// CounterMappings returns, for every symbol, where each of the n-2 counter
// bits moves. A counter that keeps holding climbs one rung; the top rung
// turns into permutation 0 of the new frame when symbol 0 completes a full
// window; everything else collapses onto the ground-truth bit n!.
func CounterMappings(n int) [][]uint32 {
	perms := perm.Factorial(n)
	counters := n - 2
	result := make([][]uint32, n-1)
	for s := 0; s < n-1; s++ {
		top := min(counters-1, n-2-s)
		m := make([]uint32, counters)
		for j := range m {
			switch {
			case j+1 <= top:
				m[j] = uint32(perms + j + 1)
			case s == 0 && j == counters-1:
				m[j] = 0
			default:
				m[j] = uint32(perms)
			}
		}
		result[s] = m
	}
	return result
}

// N returns the alphabet size.
func (t *Table) N() int { return t.n }

// Permutations returns n!, the size of the permutation region.
func (t *Table) Permutations() int { return t.perms }

// Capacity returns the total number of bits a candidate may use.
func (t *Table) Capacity() int { return t.capacity }

// Expansions returns the number of symbols a candidate can be expanded by.
// Repeating the last symbol never helps, so it is n-1.
func (t *Table) Expansions() int { return t.n - 1 }

// GroundTruth returns the bit that every expansion sets unconditionally:
// counter 0, or permutation 0 for a two-symbol alphabet where every
// expansion completes a window.
func (t *Table) GroundTruth() uint32 {
	if t.n == 2 {
		return 0
	}
	return uint32(t.perms)
}

// Choices returns the number of relabellings available for symbol.
func (t *Table) Choices(symbol int) int {
	t.checkSymbol(symbol)
	return len(t.mappings[symbol])
}

// Mapping returns the bit mapping to apply when bits is expanded by symbol.
// With several relabellings it picks the one whose image of bits has the
// lexicographically smallest ascending bit sequence; ties keep the earliest.
func (t *Table) Mapping(symbol int, bits *intset.Set) []uint32 {
	return t.mappings[symbol][t.Choice(symbol, bits)]
}

// Choice returns the index of the relabelling [Table.Mapping] selects.
func (t *Table) Choice(symbol int, bits *intset.Set) int {
	t.checkSymbol(symbol)
	inverses := t.inverses[symbol]
	if len(inverses) == 1 {
		return 0
	}

	// Counter images do not depend on the relabelling, so only the
	// permutation region can separate choices.
	survivors := make([]int, len(inverses))
	for i := range survivors {
		survivors[i] = i
	}
	next := make([]int, 0, len(survivors))
	for j := 0; j < t.perms && len(survivors) > 1; j++ {
		next = next[:0]
		for _, c := range survivors {
			if bits.Contains(inverses[c][j]) {
				next = append(next, c)
			}
		}
		if len(next) > 0 {
			survivors, next = slices.Clone(next), survivors
		}
	}
	return survivors[0]
}

func (t *Table) checkSymbol(symbol int) {
	if symbol < 0 || symbol >= t.n-1 {
		panic(fmt.Sprintf("symmetry: symbol %d out of range [0, %d)", symbol, t.n-1))
	}
}

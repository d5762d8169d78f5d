// Package perm provides the permutation primitives used by the search:
// sequence and factorial helpers, exhaustive generation and the
// lexicographic rank/unrank codec that numbers every permutation of
// [0, n) with an integer in [0, n!).
package perm

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidPermutation is returned by [Check] when a sequence is not a
// permutation of [0, len).
var ErrInvalidPermutation = errors.New("invalid permutation")

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// Factorials grow extremely fast: 13! already exceeds a 32-bit int, and the
// search itself is only practical for alphabets well below that.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Generate returns all permutations of [0, 1, ..., n-1] in lexicographic
// order, so that Generate(n)[r] is the permutation of rank r.
//
// Each returned slice is a separate allocation, safe to modify.
//
//   - n = 0: returns [[]] (one empty permutation)
//   - n = 1: returns [[0]]
func Generate(n int) [][]int {
	if n < 0 {
		n = 0
	}
	p := Seq(n)
	result := make([][]int, 0, Factorial(n))
	result = append(result, slices.Clone(p))
	for next(p) {
		result = append(result, slices.Clone(p))
	}
	return result
}

// next rearranges p into its lexicographic successor in place and reports
// whether one existed.
func next(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}

// Check reports whether p is a permutation of [0, len(p)).
func Check(p []int) error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) {
			return fmt.Errorf("%w: element %d at index %d outside [0, %d)", ErrInvalidPermutation, v, i, len(p))
		}
		if seen[v] {
			return fmt.Errorf("%w: element %d repeated at index %d", ErrInvalidPermutation, v, i)
		}
		seen[v] = true
	}
	return nil
}

// Rank returns the lexicographic index of p among all permutations of
// [0, len(p)). It is the inverse of [Unrank].
//
// Rank panics if p is not a permutation; use [Check] to validate input
// that does not come from the search itself.
func Rank(p []int) int {
	if err := Check(p); err != nil {
		panic("perm: " + err.Error())
	}
	n := len(p)
	used := make([]bool, n)
	rank := 0
	for i, v := range p {
		smaller := 0
		for u := 0; u < v; u++ {
			if !used[u] {
				smaller++
			}
		}
		used[v] = true
		rank += smaller * Factorial(n-1-i)
	}
	return rank
}

// Unrank returns the permutation of [0, n) with lexicographic index rank.
// It panics when rank is outside [0, n!).
func Unrank(rank, n int) []int {
	if n < 0 || rank < 0 || rank >= Factorial(n) {
		panic(fmt.Sprintf("perm: rank %d out of range for length %d", rank, n))
	}
	pool := Seq(n)
	result := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		f := Factorial(i)
		idx := rank / f
		rank %= f
		result = append(result, pool[idx])
		pool = slices.Delete(pool, idx, idx+1)
	}
	return result
}

// Inverse returns q such that q[p[i]] = i. p must be a permutation.
func Inverse(p []int) []int {
	q := make([]int, len(p))
	for i, v := range p {
		q[v] = i
	}
	return q
}

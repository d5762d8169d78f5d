// Package intset provides a fixed-capacity compressed set of small
// non-negative integers backed by a Roaring bitmap.
//
// A Set is the storage behind every search candidate, so it offers exactly
// what the search needs: membership, cardinality (whole set and by range),
// ascending iteration, a total order and a canonical byte key for hashing.
package intset

import (
	"encoding/binary"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a compressed integer set over [0, capacity).
//
// Sets are mutable while being built; the search treats them as immutable
// once a candidate has been constructed.
type Set struct {
	bits     *roaring.Bitmap
	capacity uint32
}

// New returns an empty set able to hold values in [0, capacity).
func New(capacity int) *Set {
	if capacity < 0 || uint64(capacity) > uint64(^uint32(0)) {
		panic(fmt.Sprintf("intset: capacity %d out of range", capacity))
	}
	return &Set{bits: roaring.New(), capacity: uint32(capacity)}
}

// Capacity returns the exclusive upper bound on values.
func (s *Set) Capacity() int { return int(s.capacity) }

// Insert adds x. It panics if x is outside [0, capacity).
func (s *Set) Insert(x uint32) {
	if x >= s.capacity {
		panic(fmt.Sprintf("intset: value %d exceeds capacity %d", x, s.capacity))
	}
	s.bits.Add(x)
}

// Contains reports whether x is in the set.
func (s *Set) Contains(x uint32) bool {
	return s.bits.Contains(x)
}

// Cardinality returns the number of values in the set.
func (s *Set) Cardinality() int {
	return int(s.bits.GetCardinality())
}

// CountRange returns the number of values in [lo, hi).
func (s *Set) CountRange(lo, hi uint32) int {
	if hi <= lo {
		return 0
	}
	n := s.bits.Rank(hi - 1)
	if lo > 0 {
		n -= s.bits.Rank(lo - 1)
	}
	return int(n)
}

// Each calls fn for every value in ascending order until fn returns false.
func (s *Set) Each(fn func(x uint32) bool) {
	s.bits.Iterate(fn)
}

// Values returns the values in ascending order.
func (s *Set) Values() []uint32 {
	return s.bits.ToArray()
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	return &Set{bits: s.bits.Clone(), capacity: s.capacity}
}

// Optimize converts containers to run-length encoding where smaller.
// Candidates call it once after construction.
func (s *Set) Optimize() {
	s.bits.RunOptimize()
}

// Equal reports whether both sets hold the same values.
func (s *Set) Equal(o *Set) bool {
	return s.bits.Equals(o.bits)
}

// Compare orders sets by their ascending value sequences, element by
// element; a set that is a proper prefix of the other sorts first.
// It returns -1, 0 or +1.
func (s *Set) Compare(o *Set) int {
	a, b := s.bits.Iterator(), o.bits.Iterator()
	for a.HasNext() && b.HasNext() {
		x, y := a.Next(), b.Next()
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	switch {
	case a.HasNext():
		return 1
	case b.HasNext():
		return -1
	}
	return 0
}

// Key returns a canonical byte string identifying the set's contents:
// equal sets produce equal keys regardless of container layout.
// Values are delta-encoded as uvarints.
func (s *Set) Key() string {
	buf := make([]byte, 0, 2*s.Cardinality())
	var prev uint32
	s.bits.Iterate(func(x uint32) bool {
		buf = binary.AppendUvarint(buf, uint64(x-prev))
		prev = x
		return true
	})
	return string(buf)
}

// String formats the set the way Roaring does, e.g. {1,3,7}.
func (s *Set) String() string {
	return s.bits.String()
}

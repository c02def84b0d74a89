// Package intset provides an ordered set of uint32 keys backed by a
// compressed roaring bitmap.
//
// Uint32Set answers the same ordered queries as the array and tree symbol
// tables (Rank, Select, Floor, Ceiling, Range) for dense or clustered
// integer key spaces, at a fraction of the memory.
package intset

import (
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/symtab"
)

var _ symtab.Ordered[uint32] = (*Uint32Set)(nil)

// Uint32Set is an ordered set of uint32 values. The zero value is an
// empty set ready to use.
type Uint32Set struct {
	rb *roaring.Bitmap
}

func (s *Uint32Set) bitmap() *roaring.Bitmap {
	if s.rb == nil {
		s.rb = roaring.New()
	}
	return s.rb
}

// New creates a set holding values.
func New(values ...uint32) *Uint32Set {
	return &Uint32Set{rb: roaring.BitmapOf(values...)}
}

// Add inserts x and reports whether it was newly added.
func (s *Uint32Set) Add(x uint32) bool {
	return s.bitmap().CheckedAdd(x)
}

// Remove deletes x and reports whether it was present.
func (s *Uint32Set) Remove(x uint32) bool {
	return s.bitmap().CheckedRemove(x)
}

// Contains reports whether x is in the set.
func (s *Uint32Set) Contains(x uint32) bool {
	return s.bitmap().Contains(x)
}

// Len returns the number of values.
func (s *Uint32Set) Len() int {
	return int(s.bitmap().GetCardinality()) //nolint:gosec // at most 1<<32
}

// IsEmpty reports whether the set has no values.
func (s *Uint32Set) IsEmpty() bool {
	return s.bitmap().IsEmpty()
}

// Min returns the smallest value.
func (s *Uint32Set) Min() (uint32, error) {
	if s.bitmap().IsEmpty() {
		return 0, symtab.Emptyf("min")
	}
	return s.bitmap().Minimum(), nil
}

// Max returns the largest value.
func (s *Uint32Set) Max() (uint32, error) {
	if s.bitmap().IsEmpty() {
		return 0, symtab.Emptyf("max")
	}
	return s.bitmap().Maximum(), nil
}

// Rank returns the number of values strictly less than x.
func (s *Uint32Set) Rank(x uint32) (int, error) {
	if x == 0 {
		return 0, nil
	}
	// roaring ranks are inclusive
	return int(s.bitmap().Rank(x - 1)), nil //nolint:gosec // at most 1<<32
}

// Select returns the value with rank i.
func (s *Uint32Set) Select(i int) (uint32, error) {
	if i < 0 || i >= s.Len() {
		return 0, symtab.Invalidf("select: rank %d out of range [0, %d)", i, s.Len())
	}
	v, err := s.bitmap().Select(uint32(i)) //nolint:gosec // bounded by Len
	if err != nil {
		return 0, fmt.Errorf("select: %w", err)
	}
	return v, nil
}

// Ceiling returns the smallest value >= x.
func (s *Uint32Set) Ceiling(x uint32) (uint32, bool) {
	it := s.bitmap().Iterator()
	it.AdvanceIfNeeded(x)
	if !it.HasNext() {
		return 0, false
	}
	return it.Next(), true
}

// Floor returns the largest value <= x.
func (s *Uint32Set) Floor(x uint32) (uint32, bool) {
	r := s.bitmap().Rank(x)
	if r == 0 {
		return 0, false
	}
	v, err := s.bitmap().Select(uint32(r - 1)) //nolint:gosec // r <= 1<<32
	if err != nil {
		return 0, false
	}
	return v, true
}

// Range yields the values in [lo, hi] in ascending order.
func (s *Uint32Set) Range(lo, hi uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if lo > hi {
			return
		}
		it := s.bitmap().Iterator()
		it.AdvanceIfNeeded(lo)
		for it.HasNext() {
			v := it.Next()
			if v > hi || !yield(v) {
				return
			}
		}
	}
}

// RangeCount returns the number of values in [lo, hi].
func (s *Uint32Set) RangeCount(lo, hi uint32) int {
	if lo > hi {
		return 0
	}
	n := s.bitmap().Rank(hi)
	if lo > 0 {
		n -= s.bitmap().Rank(lo - 1)
	}
	return int(n) //nolint:gosec // at most 1<<32
}

// Keys yields all values in ascending order.
func (s *Uint32Set) Keys() iter.Seq[uint32] {
	return s.Range(0, math.MaxUint32)
}

// Clone returns a deep copy.
func (s *Uint32Set) Clone() *Uint32Set {
	return &Uint32Set{rb: s.bitmap().Clone()}
}

// Union adds every value of other to s.
func (s *Uint32Set) Union(other *Uint32Set) {
	s.bitmap().Or(other.bitmap())
}

// Intersect keeps only the values also in other.
func (s *Uint32Set) Intersect(other *Uint32Set) {
	s.bitmap().And(other.bitmap())
}

// Clear removes all values.
func (s *Uint32Set) Clear() {
	s.bitmap().Clear()
}

// SizeInBytes estimates the serialized size.
func (s *Uint32Set) SizeInBytes() uint64 {
	return s.bitmap().GetSerializedSizeInBytes()
}

// MarshalBinary encodes the set in the portable roaring format.
func (s *Uint32Set) MarshalBinary() ([]byte, error) {
	s.bitmap().RunOptimize()
	return s.bitmap().MarshalBinary()
}

// UnmarshalBinary replaces the contents of s with data produced by
// MarshalBinary.
func (s *Uint32Set) UnmarshalBinary(data []byte) error {
	rb := roaring.New()
	if err := rb.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("intset: %w", err)
	}
	s.rb = rb
	return nil
}

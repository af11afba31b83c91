package tensor

import (
	"fmt"
	"math"
	"strings"
)

// MaxRank is the highest supported number of dimensions.
const MaxRank = 8

// Shape represents the dimensions of a tensor.
type Shape []int

// Validate checks the shape structurally: rank 1..MaxRank, every
// dimension > 0. It does not compute element totals.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("shape has no dimensions")
	}
	if len(s) > MaxRank {
		return fmt.Errorf("rank %d exceeds the maximum of %d", len(s), MaxRank)
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// NumElements returns the total number of elements in the shape,
// or 0 if the shape is empty, contains a non-positive dimension, or the
// product would overflow the platform's unsigned size. The overflow check
// runs before each multiplication so the running product never wraps;
// a legitimate tensor always has at least one element, so 0 doubles as
// the invalid sentinel.
func (s Shape) NumElements() uint {
	if len(s) == 0 {
		return 0
	}
	total := uint(1)
	for _, dim := range s {
		if dim <= 0 {
			return 0
		}
		if total > math.MaxUint/uint(dim) {
			return 0
		}
		total *= uint(dim)
	}
	return total
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the shape as "[d0, d1, ...]".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, dim := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", dim)
	}
	b.WriteByte(']')
	return b.String()
}

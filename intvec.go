package parameterx

import (
	"slices"
	"strconv"
	"strings"
)

// Integer is satisfied by every signed and unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntVec is an immutable sequence of integers with its own nominal type.
// Get[IntVec[int]] and Get[[]int] never match each other's values.
type IntVec[T Integer] struct {
	vals []T
}

// NewIntVec creates an IntVec holding a copy of vals.
func NewIntVec[T Integer](vals ...T) IntVec[T] {
	return IntVec[T]{vals: slices.Clone(vals)}
}

// Values returns a copy of the integers.
func (v IntVec[T]) Values() []T {
	return slices.Clone(v.vals)
}

// Len returns the number of integers.
func (v IntVec[T]) Len() int {
	return len(v.vals)
}

// At returns the integer at index i. It panics if i is out of range.
func (v IntVec[T]) At(i int) T {
	return v.vals[i]
}

// InRange reports whether every integer lies in [lo, hi].
func (v IntVec[T]) InRange(lo, hi T) bool {
	for _, n := range v.vals {
		if n < lo || n > hi {
			return false
		}
	}
	return true
}

// String renders the integers as "[85, 92, 78]".
func (v IntVec[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range v.vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatInt(n))
	}
	sb.WriteByte(']')
	return sb.String()
}

func formatInt[T Integer](n T) string {
	// The sign test is false for every unsigned T.
	if n < 0 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatUint(uint64(n), 10)
}

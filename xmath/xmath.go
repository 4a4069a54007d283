// Package xmath provides the generic integer helpers and small point types
// shared by the puzzle solutions.
package xmath

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns |x|.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AbsDiff returns |x-y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	return Abs(x - y)
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Sum adds nums.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product multiplies nums; the empty product is 1.
func Product[T Number](nums ...T) T {
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// MinMax returns the smallest and largest element of nums.
// It panics on an empty slice.
func MinMax[T constraints.Ordered](nums []T) (lo, hi T) {
	lo, hi = nums[0], nums[0]
	for _, v := range nums[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// Median returns the lower median of nums without modifying it.
// It panics on an empty slice.
func Median[T constraints.Ordered](nums []T) T {
	s := Sorted(nums)
	return s[(len(s)-1)/2]
}

// Sorted returns an ascending copy of nums.
func Sorted[T constraints.Ordered](nums []T) []T {
	s := append([]T(nil), nums...)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

// Triangle returns 1+2+...+n.
func Triangle[T constraints.Integer](n T) T {
	return n * (n + 1) / 2
}

// Pt2 is a 2D integer point.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Add returns a+b.
func (a Pt2[T]) Add(b Pt2[T]) Pt2[T] { return Pt2[T]{a.X + b.X, a.Y + b.Y} }

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// Pt3 is a 3D integer point.
type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

// Add returns a+b.
func (a Pt3[T]) Add(b Pt3[T]) Pt3[T] { return Pt3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b.
func (a Pt3[T]) Sub(b Pt3[T]) Pt3[T] { return Pt3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// MDist returns the manhattan distance between a and b.
func (a Pt3[T]) MDist(b Pt3[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y) + AbsDiff(a.Z, b.Z)
}

// PtInt and Pt3Int are the point types most solutions use.
type (
	PtInt  = Pt2[int]
	Pt3Int = Pt3[int]
)

package xmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/aoc2021/xmath"
)

func TestScalars(t *testing.T) {
	assert.Equal(t, 3, xmath.Abs(-3))
	assert.Equal(t, 2.5, xmath.Abs(-2.5))
	assert.Equal(t, int64(7), xmath.AbsDiff[int64](2, 9))
	assert.Equal(t, -1, xmath.Sign(-42))
	assert.Equal(t, 0, xmath.Sign(0))
	assert.Equal(t, 1, xmath.Sign(5))
	assert.Equal(t, 15, xmath.Triangle(5))
}

func TestAggregates(t *testing.T) {
	nums := []int{16, 1, 2, 0, 4, 2, 7, 1, 2, 14}
	assert.Equal(t, 49, xmath.Sum(nums...))
	assert.Equal(t, 24, xmath.Product(2, 3, 4))
	assert.Equal(t, 1, xmath.Product[int]())
	lo, hi := xmath.MinMax(nums)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 16, hi)
	assert.Equal(t, 2, xmath.Median(nums))
	assert.Equal(t, 16, nums[0], "Median must not reorder its input")
	assert.Equal(t, []int{1, 2, 3}, xmath.Sorted([]int{3, 1, 2}))
}

func TestPoints(t *testing.T) {
	a, b := xmath.PtInt{X: 1, Y: -2}, xmath.PtInt{X: -3, Y: 4}
	assert.Equal(t, 10, a.MDist(b))
	assert.Equal(t, xmath.PtInt{X: -2, Y: 2}, a.Add(b))

	p := xmath.Pt3Int{X: 1105, Y: -1205, Z: 1229}
	q := xmath.Pt3Int{X: -92, Y: -2380, Z: -20}
	assert.Equal(t, 3621, p.MDist(q))
	assert.Equal(t, p, p.Sub(q).Add(q))
}

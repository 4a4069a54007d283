// SPDX-License-Identifier: MIT

package grid

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// New returns a zero-filled w×h grid.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H).
func New[T constraints.Integer](w, h int) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid[T]{Width: w, Height: h, cells: make([]T, w*h)}, nil
}

// FromRows builds a grid from a non-empty, rectangular 2D slice.
// The rows are copied; later changes to rows do not affect the grid.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func FromRows[T constraints.Integer](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid[T]{Width: w, Height: h, cells: make([]T, 0, w*h)}
	for _, row := range rows {
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid[T]) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid[T]) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Len returns the number of cells, Width*Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// At returns the value at (x,y). It panics if (x,y) is out of bounds.
func (g *Grid[T]) At(x, y int) T {
	return g.cells[g.Index(x, y)]
}

// Get returns the value at (x,y) and whether (x,y) is in bounds.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}

	return g.cells[g.Index(x, y)], true
}

// Set stores v at (x,y). It panics if (x,y) is out of bounds.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.Index(x, y)] = v
}

// AtIndex returns the value at row-major index idx.
func (g *Grid[T]) AtIndex(idx int) T { return g.cells[idx] }

// SetIndex stores v at row-major index idx.
func (g *Grid[T]) SetIndex(idx int, v T) { g.cells[idx] = v }

// Values exposes the row-major backing slice. Writes through it mutate the grid;
// it exists so whole-grid passes can run as a single flat loop.
func (g *Grid[T]) Values() []T { return g.cells }

// Neighbors calls fn with the index of every in-bounds neighbour of idx under conn.
// Complexity: O(d).
func (g *Grid[T]) Neighbors(idx int, conn Connectivity, fn func(n int)) {
	x, y := g.Coordinate(idx)
	for _, d := range Offsets(conn) {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			fn(g.Index(nx, ny))
		}
	}
}

// Row returns a copy of row y.
func (g *Grid[T]) Row(y int) []T {
	out := make([]T, g.Width)
	copy(out, g.cells[y*g.Width:(y+1)*g.Width])

	return out
}

// Column returns a copy of column x.
func (g *Grid[T]) Column(x int) []T {
	out := make([]T, g.Height)
	for y := 0; y < g.Height; y++ {
		out[y] = g.cells[g.Index(x, y)]
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{Width: g.Width, Height: g.Height, cells: cells}
}

// Equal reports whether g and o have the same shape and cell values.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if o == nil || g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}

	return true
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Count returns the number of cells for which pred holds.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}

	return n
}

// Sum returns the sum of all cells as an int.
func (g *Grid[T]) Sum() int {
	total := 0
	for _, v := range g.cells {
		total += int(v)
	}

	return total
}

// Render draws the grid one line per row, mapping each cell with glyph.
// Rows are separated by '\n' with no trailing newline.
func (g *Grid[T]) Render(glyph func(T) byte) string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			b.WriteByte(glyph(g.cells[g.Index(x, y)]))
		}
	}

	return b.String()
}

// SPDX-License-Identifier: MIT

package grid

// Pad returns a new grid with n cells of fill added on every side.
// Complexity: O((W+2n)×(H+2n)).
func (g *Grid[T]) Pad(n int, fill T) *Grid[T] {
	w, h := g.Width+2*n, g.Height+2*n
	out := &Grid[T]{Width: w, Height: h, cells: make([]T, w*h)}
	if fill != 0 {
		out.Fill(fill)
	}
	for y := 0; y < g.Height; y++ {
		copy(out.cells[(y+n)*w+n:], g.cells[y*g.Width:(y+1)*g.Width])
	}

	return out
}

// Tile returns a grid made of nx×ny copies of g. Each copy's cells are
// produced by tile(v, tx, ty), where (tx,ty) is the copy's position.
// Complexity: O(nx×ny×W×H).
func (g *Grid[T]) Tile(nx, ny int, tile func(v T, tx, ty int) T) *Grid[T] {
	w, h := g.Width*nx, g.Height*ny
	out := &Grid[T]{Width: w, Height: h, cells: make([]T, w*h)}
	for y := 0; y < h; y++ {
		ty, sy := y/g.Height, y%g.Height
		for x := 0; x < w; x++ {
			tx, sx := x/g.Width, x%g.Width
			out.cells[y*w+x] = tile(g.cells[sy*g.Width+sx], tx, ty)
		}
	}

	return out
}

// Neighborhood returns the 3×3 block centred on (x,y) in row-major order.
// Cells outside the grid read as outside.
func (g *Grid[T]) Neighborhood(x, y int, outside T) [9]T {
	var block [9]T
	k := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if v, ok := g.Get(x+dx, y+dy); ok {
				block[k] = v
			} else {
				block[k] = outside
			}
			k++
		}
	}

	return block
}

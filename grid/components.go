// SPDX-License-Identifier: MIT

package grid

// Components finds all contiguous regions of cells accepted by member,
// according to conn connectivity.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order. Components themselves are ordered by
// the row-major position of their first cell.
//
// To convert an index back to (x,y), use Coordinate.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) Components(member func(T) bool, conn Connectivity) [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, v := range g.cells {
		if seen[i0] || !member(v) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			g.Neighbors(queue[qi], conn, func(n int) {
				if !seen[n] && member(g.cells[n]) {
					seen[n] = true
					queue = append(queue, n)
				}
			})
		}
		comps = append(comps, queue)
	}

	return comps
}

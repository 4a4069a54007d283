// SPDX-License-Identifier: MIT

package grid

import "golang.org/x/exp/constraints"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the (dx,dy) neighbour offsets for conn.
// The returned slice is shared; do not modify it.
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}

	return offsets4
}

// Grid is a Width×Height rectangle of integer cells stored row-major.
// The zero value is not usable; build grids with New, FromRows or a Parse function.
type Grid[T constraints.Integer] struct {
	Width, Height int
	cells         []T // len == Width*Height
}

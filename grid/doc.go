// SPDX-License-Identifier: MIT

// Package grid treats a rectangular block of puzzle text as a 2D grid of
// integer cells and offers the neighbourhood, flood-fill and whole-grid
// arithmetic that cellular automata and map puzzles need.
//
// What:
//
//   - Grid[T] stores Width×Height cells in one row-major slice (offset = y*Width + x).
//   - Conn4 / Conn8 select orthogonal or king-move neighbourhoods.
//   - Components groups cells accepted by a predicate into contiguous regions.
//   - Pad, Tile, Neighborhood and Render cover the image-style puzzles.
//
// Why:
//
//   - Height maps, octopus grids, risk maps, trench images and sea-cucumber
//     herds are all "parse digits, look at neighbours, repeat".
//   - A flat slice keeps whole-grid passes (Count, Sum, Equal) cache friendly.
//
// Complexity:
//
//   - Parse*, Clone, Equal, Count, Sum, Pad: O(W×H).
//   - At, Set, Index, Coordinate: O(1).
//   - Neighbors: O(d), d = 4 or 8.
//   - Components: O(W×H×d) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a character could not be mapped to a cell value.
package grid

// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ParseDigits parses lines of decimal digits ("2199943210") into a grid.
// Blank leading/trailing lines and '\r' are ignored.
func ParseDigits(input string) (*Grid[int], error) {
	return ParseMapped(input, func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, ErrBadCell
		}
		return int(r - '0'), nil
	})
}

// ParseMapped parses a character grid, translating each rune with cell.
// An error from cell is wrapped with the offending position.
func ParseMapped[T constraints.Integer](input string, cell func(rune) (T, error)) (*Grid[T], error) {
	lines := strings.Split(strings.Trim(strings.ReplaceAll(input, "\r", ""), "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(lines[0]))
	g := &Grid[T]{Width: w, Height: len(lines), cells: make([]T, 0, w*len(lines))}
	for y, line := range lines {
		runes := []rune(line)
		if len(runes) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(runes), w, ErrNonRectangular)
		}
		for x, r := range runes {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d) %q: %w", x, y, r, err)
			}
			g.cells = append(g.cells, v)
		}
	}

	return g, nil
}

// Glyphs returns a cell mapper for ParseMapped that looks runes up in table.
// Runes missing from table yield ErrBadCell.
func Glyphs[T constraints.Integer](table map[rune]T) func(rune) (T, error) {
	return func(r rune) (T, error) {
		v, ok := table[r]
		if !ok {
			return v, ErrBadCell
		}
		return v, nil
	}
}

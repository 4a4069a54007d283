package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/aoc2021/grid"
)

//----------------------------------------------------------------------------//
// Construction and parsing
//----------------------------------------------------------------------------//

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromRows(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := grid.New[int](0, 3); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Errorf("New(0,3) error = %v; want ErrEmptyGrid", err)
	}
}

func TestParseDigits(t *testing.T) {
	g, err := grid.ParseDigits("219\n398\n\n")
	if err != nil {
		t.Fatalf("ParseDigits: %v", err)
	}
	if g.Width != 3 || g.Height != 2 {
		t.Fatalf("shape = %dx%d; want 3x2", g.Width, g.Height)
	}
	if got := g.At(2, 1); got != 8 {
		t.Errorf("At(2,1) = %d; want 8", got)
	}
	if got := g.Sum(); got != 32 {
		t.Errorf("Sum = %d; want 32", got)
	}
}

func TestParseDigits_Errors(t *testing.T) {
	if _, err := grid.ParseDigits("12\n3x"); !errors.Is(err, grid.ErrBadCell) {
		t.Errorf("bad digit: error = %v; want ErrBadCell", err)
	}
	if _, err := grid.ParseDigits("12\n3"); !errors.Is(err, grid.ErrNonRectangular) {
		t.Errorf("ragged: error = %v; want ErrNonRectangular", err)
	}
	if _, err := grid.ParseDigits(""); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Errorf("empty: error = %v; want ErrEmptyGrid", err)
	}
}

func TestParseMapped_Glyphs(t *testing.T) {
	g, err := grid.ParseMapped("#.\n.#", grid.Glyphs(map[rune]uint8{'.': 0, '#': 1}))
	if err != nil {
		t.Fatalf("ParseMapped: %v", err)
	}
	if got := g.Count(func(v uint8) bool { return v == 1 }); got != 2 {
		t.Errorf("lit = %d; want 2", got)
	}
	if got := g.Render(func(v uint8) byte { return ".#"[v] }); got != "#.\n.#" {
		t.Errorf("Render = %q", got)
	}
}

//----------------------------------------------------------------------------//
// Accessors
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds and Get on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, _ := grid.FromRows([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
		if _, ok := g.Get(xy[0], xy[1]); ok {
			t.Errorf("Get(%d,%d) ok; want !ok", xy[0], xy[1])
		}
	}
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, _ := grid.New[int](4, 3)
	for i := 0; i < g.Len(); i++ {
		x, y := g.Coordinate(i)
		if g.Index(x, y) != i {
			t.Fatalf("Index(Coordinate(%d)) = %d", i, g.Index(x, y))
		}
	}
}

func TestNeighbors_Corner(t *testing.T) {
	g, _ := grid.New[int](3, 3)
	var n4, n8 int
	g.Neighbors(0, grid.Conn4, func(int) { n4++ })
	g.Neighbors(0, grid.Conn8, func(int) { n8++ })
	if n4 != 2 || n8 != 3 {
		t.Errorf("corner neighbours = %d/%d; want 2/3", n4, n8)
	}
	var c8 int
	g.Neighbors(g.Index(1, 1), grid.Conn8, func(int) { c8++ })
	if c8 != 8 {
		t.Errorf("centre Conn8 neighbours = %d; want 8", c8)
	}
}

func TestRowColumnClone(t *testing.T) {
	g, _ := grid.FromRows([][]int{{1, 2}, {3, 4}})
	if got := g.Column(1); got[0] != 2 || got[1] != 4 {
		t.Errorf("Column(1) = %v", got)
	}
	row := g.Row(0)
	row[0] = 9
	if g.At(0, 0) != 1 {
		t.Errorf("Row must return a copy")
	}
	c := g.Clone()
	c.Set(1, 1, 7)
	if g.Equal(c) {
		t.Errorf("clone mutation leaked into original")
	}
	c.Set(1, 1, 4)
	if !g.Equal(c) {
		t.Errorf("restored clone should equal original")
	}
}

//----------------------------------------------------------------------------//
// Transforms
//----------------------------------------------------------------------------//

func TestPad(t *testing.T) {
	g, _ := grid.FromRows([][]int{{5}})
	p := g.Pad(1, 2)
	if p.Width != 3 || p.Height != 3 {
		t.Fatalf("Pad shape = %dx%d; want 3x3", p.Width, p.Height)
	}
	if p.At(1, 1) != 5 || p.At(0, 0) != 2 || p.Sum() != 5+8*2 {
		t.Errorf("Pad contents wrong: %v", p.Values())
	}
}

func TestTile(t *testing.T) {
	g, _ := grid.FromRows([][]int{{8}})
	tiled := g.Tile(3, 2, func(v, tx, ty int) int { return v + tx + ty })
	want := [][]int{{8, 9, 10}, {9, 10, 11}}
	for y, row := range want {
		for x, v := range row {
			if tiled.At(x, y) != v {
				t.Errorf("tile (%d,%d) = %d; want %d", x, y, tiled.At(x, y), v)
			}
		}
	}
}

func TestNeighborhood_Outside(t *testing.T) {
	g, _ := grid.FromRows([][]int{{1, 2}, {3, 4}})
	got := g.Neighborhood(0, 0, 7)
	want := [9]int{7, 7, 7, 7, 1, 2, 7, 3, 4}
	if got != want {
		t.Errorf("Neighborhood = %v; want %v", got, want)
	}
}

package day23

import (
	"strings"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/xmath"
)

const (
	// HallLen is the number of hallway spaces.
	HallLen = 11
	// Rooms is the number of side rooms, one per amphipod type.
	Rooms = 4
	// MaxDepth is the deepest room the burrow can represent.
	MaxDepth = 4

	empty = '.'
)

// energy per step for A, B, C and D.
var energy = [Rooms]int64{1, 10, 100, 1000}

// entrance returns the hallway index just outside room r.
func entrance(r int) int { return 2 + 2*r }

func isEntrance(h int) bool { return h >= 2 && h <= 8 && h%2 == 0 }

// Burrow is a comparable snapshot of every amphipod's position. Room slot 0
// is nearest the hallway.
type Burrow struct {
	Hall  [HallLen]byte
	Rooms [Rooms][MaxDepth]byte
	Depth int
}

// ParseBurrow reads the diagram. Every line between the hallway and the
// closing wall is one room row; '.' marks a free space anywhere.
func ParseBurrow(lines []string) (Burrow, error) {
	var b Burrow
	if len(lines) < 4 {
		return b, parse.Malformed("burrow diagram too short")
	}
	rows := lines[2 : len(lines)-1]
	if len(rows) > MaxDepth {
		return b, parse.Malformed("burrow has %d room rows, at most %d supported", len(rows), MaxDepth)
	}
	if len(lines[1]) < HallLen+2 {
		return b, parse.Malformed("hallway line too short: %q", lines[1])
	}
	b.Depth = len(rows)

	var seen [Rooms]int
	cell := func(c byte) (byte, error) {
		switch {
		case c == empty:
		case c >= 'A' && c <= 'D':
			seen[c-'A']++
		default:
			return 0, parse.Malformed("unexpected %q in burrow", c)
		}
		return c, nil
	}
	for h := range HallLen {
		c, err := cell(lines[1][h+1])
		if err != nil {
			return b, err
		}
		b.Hall[h] = c
	}
	for d, row := range rows {
		for r := range Rooms {
			col := 3 + 2*r
			if col >= len(row) {
				return b, parse.Malformed("room row %d is too short: %q", d+1, row)
			}
			c, err := cell(row[col])
			if err != nil {
				return b, err
			}
			b.Rooms[r][d] = c
		}
	}
	for t, n := range seen {
		if n != b.Depth {
			return b, parse.Malformed("%d amphipods of type %c, want %d", n, 'A'+t, b.Depth)
		}
	}
	return b, nil
}

// Unfold inserts extra rows below the first room row.
func (b Burrow) Unfold(rows ...string) (Burrow, error) {
	if b.Depth+len(rows) > MaxDepth {
		return b, parse.Malformed("unfolded burrow deeper than %d", MaxDepth)
	}
	out := b
	out.Depth = b.Depth + len(rows)
	for r := range Rooms {
		col := []byte{b.Rooms[r][0]}
		for _, row := range rows {
			if len(row) != Rooms {
				return b, parse.Malformed("unfold row %q must have %d amphipods", row, Rooms)
			}
			col = append(col, row[r])
		}
		col = append(col, b.Rooms[r][1:b.Depth]...)
		copy(out.Rooms[r][:], col)
	}
	return out, nil
}

// Organized reports whether every amphipod is home.
func (b Burrow) Organized() bool {
	for r := range Rooms {
		for d := range b.Depth {
			if b.Rooms[r][d] != byte('A'+r) {
				return false
			}
		}
	}
	return true
}

// settledFrom reports whether slots d and below of room r hold only
// amphipods that belong there.
func (b Burrow) settledFrom(r, d int) bool {
	for ; d < b.Depth; d++ {
		if b.Rooms[r][d] != byte('A'+r) {
			return false
		}
	}
	return true
}

// hallClear reports whether hallway cells strictly between from and to,
// plus to itself, are empty.
func (b Burrow) hallClear(from, to int) bool {
	if from == to {
		return b.Hall[to] == empty
	}
	step := xmath.Sign(to - from)
	for h := from + step; ; h += step {
		if b.Hall[h] != empty {
			return false
		}
		if h == to {
			return true
		}
	}
}

// Moves emits every legal single move with its energy cost.
func (b Burrow) Moves(emit func(Burrow, int64)) {
	// Hallway to home room.
	for h, c := range b.Hall {
		if c == empty {
			continue
		}
		r := int(c - 'A')
		// Deepest free slot; everything below it must already be home.
		d := -1
		for k := 0; k < b.Depth && b.Rooms[r][k] == empty; k++ {
			d = k
		}
		if d < 0 || !b.settledFrom(r, d+1) || !b.hallClear(h, entrance(r)) {
			continue
		}
		next := b
		next.Hall[h] = empty
		next.Rooms[r][d] = c
		emit(next, int64(xmath.AbsDiff(h, entrance(r))+d+1)*energy[r])
	}

	// Room to hallway.
	for r := range Rooms {
		d := 0
		for d < b.Depth && b.Rooms[r][d] == empty {
			d++
		}
		if d == b.Depth || b.settledFrom(r, d) {
			continue
		}
		c := b.Rooms[r][d]
		for h := range HallLen {
			if isEntrance(h) || !b.hallClear(entrance(r), h) {
				continue
			}
			next := b
			next.Rooms[r][d] = empty
			next.Hall[h] = c
			emit(next, int64(xmath.AbsDiff(h, entrance(r))+d+1)*energy[c-'A'])
		}
	}
}

// String draws the burrow in the puzzle's diagram format.
func (b Burrow) String() string {
	var sb strings.Builder
	sb.WriteString("#############\n#")
	sb.Write(b.Hall[:])
	sb.WriteString("#\n")
	for d := range b.Depth {
		if d == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for r := range Rooms {
			sb.WriteByte(b.Rooms[r][d])
			sb.WriteByte('#')
		}
		if d == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  #########")
	return sb.String()
}

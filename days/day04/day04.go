// Package day04 solves "Giant Squid": playing bingo against a squid.
package day04

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// Size is the side length of a bingo board.
const Size = 5

// Board is a bingo card with its marks.
type Board struct {
	nums   *grid.Grid[int]
	marked *grid.Grid[uint8]
	won    bool
}

// Game is the draw order and the boards in play.
type Game struct {
	Draws  []int
	Boards []*Board
}

func init() {
	puzzle.Register(4, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		g, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part1(g)
	})
	puzzle.Register(4, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		g, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part2(g)
	})
}

// Parse reads the comma-separated draws followed by blank-line separated
// 5×5 boards.
func Parse(in []byte) (*Game, error) {
	blocks := parse.Blocks(in)
	if len(blocks) < 2 || len(blocks[0]) != 1 {
		return nil, parse.Malformed("want a draw line followed by boards")
	}
	draws, err := parse.Ints(blocks[0][0], ",")
	if err != nil {
		return nil, fmt.Errorf("draws: %w", err)
	}
	game := &Game{Draws: draws}
	for i, b := range blocks[1:] {
		rows := make([][]int, 0, len(b))
		for _, line := range b {
			row, err := parse.Ints(line, "")
			if err != nil {
				return nil, fmt.Errorf("board %d: %w", i+1, err)
			}
			rows = append(rows, row)
		}
		if len(rows) != Size || len(rows[0]) != Size {
			return nil, parse.Malformed("board %d is not %dx%d", i+1, Size, Size)
		}
		nums, err := grid.FromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: board %d: %v", parse.ErrMalformed, i+1, err)
		}
		marked, _ := grid.New[uint8](Size, Size)
		game.Boards = append(game.Boards, &Board{nums: nums, marked: marked})
	}
	return game, nil
}

// Mark crosses out n and reports whether the board has just completed a row
// or column.
func (b *Board) Mark(n int) bool {
	for i, v := range b.nums.Values() {
		if v != n {
			continue
		}
		b.marked.SetIndex(i, 1)
		x, y := b.nums.Coordinate(i)
		if full(b.marked.Row(y)) || full(b.marked.Column(x)) {
			return true
		}
	}
	return false
}

// Unmarked sums the numbers not yet crossed out.
func (b *Board) Unmarked() int {
	sum := 0
	for i, v := range b.nums.Values() {
		if b.marked.AtIndex(i) == 0 {
			sum += v
		}
	}
	return sum
}

func full(line []uint8) bool {
	for _, m := range line {
		if m == 0 {
			return false
		}
	}
	return true
}

// scores plays every draw on clean copies of the boards and returns the
// score of each board in winning order. g itself is left untouched.
func (g *Game) scores() []int {
	boards := make([]*Board, len(g.Boards))
	for i, b := range g.Boards {
		marked, _ := grid.New[uint8](Size, Size)
		boards[i] = &Board{nums: b.nums, marked: marked}
	}
	var out []int
	for _, d := range g.Draws {
		for _, b := range boards {
			if b.won {
				continue
			}
			if b.Mark(d) {
				b.won = true
				out = append(out, b.Unmarked()*d)
			}
		}
	}
	return out
}

// Part1 returns the score of the first board to win.
func Part1(g *Game) (int, error) {
	s := g.scores()
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: no board wins", parse.ErrMalformed)
	}
	return s[0], nil
}

// Part2 returns the score of the last board to win.
func Part2(g *Game) (int, error) {
	s := g.scores()
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: no board wins", parse.ErrMalformed)
	}
	return s[len(s)-1], nil
}

// String renders the board with marked numbers in brackets.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if b.marked.At(x, y) == 1 {
				fmt.Fprintf(&sb, "[%2d]", b.nums.At(x, y))
			} else {
				fmt.Fprintf(&sb, " %2d ", b.nums.At(x, y))
			}
		}
		if y < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Package day21 solves "Dirac Dice": a board game played first with a
// deterministic die, then with a die that splits the universe on every roll.
package day21

import (
	"context"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

const (
	// BoardSize is the number of spaces on the circular track.
	BoardSize = 10
	// PracticeTarget ends the deterministic game.
	PracticeTarget = 1000
	// DiracTarget ends the quantum game.
	DiracTarget = 21
)

// diracRolls[s] is the number of universes in which three 3-sided rolls sum to s.
var diracRolls = [10]int{3: 1, 4: 3, 5: 6, 6: 7, 7: 6, 8: 3, 9: 1}

func init() {
	puzzle.Register(21, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		p1, p2, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Practice(p1, p2), nil
	})
	puzzle.Register(21, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		p1, p2, err := Parse(in)
		if err != nil {
			return nil, err
		}
		w1, w2 := Dirac(p1, p2)
		return max(w1, w2), nil
	})
}

// Parse reads the two starting positions.
func Parse(in []byte) (p1, p2 int, err error) {
	lines := parse.Lines(in)
	if len(lines) != 2 {
		return 0, 0, parse.Malformed("want 2 players, got %d lines", len(lines))
	}
	pos := [2]*int{&p1, &p2}
	for i, l := range lines {
		var who int
		if err := parse.Scanf(l, "Player %d starting position: %d", &who, pos[i]); err != nil {
			return 0, 0, err
		}
		if *pos[i] < 1 || *pos[i] > BoardSize {
			return 0, 0, parse.Malformed("player %d starts off the board at %d", who, *pos[i])
		}
	}
	return p1, p2, nil
}

func advance(pos, roll int) int {
	return (pos+roll-1)%BoardSize + 1
}

// Practice plays with a 100-sided die that rolls 1, 2, 3, ... and returns
// the loser's score multiplied by the number of rolls.
func Practice(p1, p2 int) int {
	pos := [2]int{p1, p2}
	var score [2]int
	rolls, die := 0, 0
	for turn := 0; ; turn ^= 1 {
		move := 0
		for range 3 {
			die = die%100 + 1
			move += die
		}
		rolls += 3
		pos[turn] = advance(pos[turn], move)
		score[turn] += pos[turn]
		if score[turn] >= PracticeTarget {
			return score[turn^1] * rolls
		}
	}
}

// state is the game from the point of view of the player about to move.
type state struct {
	pos, score       int
	oppPos, oppScore int
}

// Dirac counts the universes in which each player wins.
func Dirac(p1, p2 int) (w1, w2 int) {
	memo := make(map[state][2]int)
	var wins func(s state) [2]int
	wins = func(s state) [2]int {
		if w, ok := memo[s]; ok {
			return w
		}
		var w [2]int
		for roll, n := range diracRolls {
			if n == 0 {
				continue
			}
			pos := advance(s.pos, roll)
			score := s.score + pos
			if score >= DiracTarget {
				w[0] += n
				continue
			}
			// The opponent moves next; swap perspectives.
			sub := wins(state{s.oppPos, s.oppScore, pos, score})
			w[0] += n * sub[1]
			w[1] += n * sub[0]
		}
		memo[s] = w
		return w
	}
	w := wins(state{pos: p1, oppPos: p2})
	return w[0], w[1]
}

package day24

import "math"

// monadBlock is the instruction template MONAD repeats once per digit.
// The div z, add x and add y immediates at monadDiv, monadCheck and
// monadOffset vary between blocks.
const monadBlock = `inp w
mul x 0
add x z
mod x 26
div z 1
add x 0
eql x w
eql x 0
mul y 0
add y 25
mul y x
add y 1
mul z y
mul y 0
add y w
add y 0
mul y x
add z y
`

const (
	monadDiv    = 4
	monadCheck  = 5
	monadOffset = 15
)

var monadTemplate, _ = Parse([]byte(monadBlock))

// zBounds returns, for each input of a MONAD-shaped program, an exclusive
// upper bound on z at that input beyond which z can no longer reach zero.
// A block either keeps z/div or grows it to (z/div)*26 + w + offset, so
// each "div z 26" block removes at most one base-26 digit. It returns nil
// for any other program.
func zBounds(prog []Instruction) []int {
	n := len(monadTemplate)
	if len(prog) == 0 || len(prog)%n != 0 {
		return nil
	}
	blocks := len(prog) / n
	shrinks := make([]bool, blocks)
	for b := range blocks {
		block := prog[b*n : (b+1)*n]
		for i, want := range monadTemplate {
			got := block[i]
			switch i {
			case monadDiv:
				if got.Imm != 1 && got.Imm != 26 {
					return nil
				}
				got.Imm = want.Imm
			case monadCheck:
				got.Imm = want.Imm
			case monadOffset:
				if got.Imm < 0 {
					return nil
				}
				got.Imm = want.Imm
			}
			if got != want {
				return nil
			}
		}
		shrinks[b] = block[monadDiv].Imm == 26
	}

	bounds := make([]int, blocks)
	limit := 1
	for b := blocks - 1; b >= 0; b-- {
		if shrinks[b] {
			if limit > math.MaxInt/26 {
				limit = math.MaxInt
			} else {
				limit *= 26
			}
		}
		bounds[b] = limit
	}
	return bounds
}

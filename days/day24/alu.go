package day24

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/parse"
)

// Registers w, x, y and z, in that order.
type Registers [4]int

// Op is an ALU instruction code.
type Op uint8

// Instruction set.
const (
	OpInp Op = iota
	OpAdd
	OpMul
	OpDiv
	OpMod
	OpEql
)

var opNames = map[string]Op{
	"inp": OpInp, "add": OpAdd, "mul": OpMul,
	"div": OpDiv, "mod": OpMod, "eql": OpEql,
}

// ALU errors.
var (
	ErrDivideByZero   = errors.New("day24: division by zero")
	ErrBadModulo      = errors.New("day24: mod with negative dividend or non-positive divisor")
	ErrInputExhausted = errors.New("day24: inp with no input left")
)

// Instruction is one decoded line. When Reg is true, B names a register;
// otherwise Imm is the literal operand.
type Instruction struct {
	Op  Op
	A   int
	B   int
	Reg bool
	Imm int
}

func register(s string) (int, bool) {
	if len(s) != 1 || s[0] < 'w' || s[0] > 'z' {
		return 0, false
	}
	return int(s[0] - 'w'), true
}

// Parse decodes a program.
func Parse(in []byte) ([]Instruction, error) {
	lines := parse.Lines(in)
	prog := make([]Instruction, 0, len(lines))
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) == 0 {
			continue
		}
		op, ok := opNames[f[0]]
		if !ok {
			return nil, parse.Malformed("line %d: unknown instruction %q", i+1, f[0])
		}
		want := 3
		if op == OpInp {
			want = 2
		}
		if len(f) != want {
			return nil, parse.Malformed("line %d: %s takes %d operands", i+1, f[0], want-1)
		}
		ins := Instruction{Op: op}
		if ins.A, ok = register(f[1]); !ok {
			return nil, parse.Malformed("line %d: %q is not a register", i+1, f[1])
		}
		if want == 3 {
			if ins.B, ins.Reg = register(f[2]); !ins.Reg {
				n, err := parse.Int(f[2])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", i+1, err)
				}
				ins.Imm = n
			}
		}
		prog = append(prog, ins)
	}
	return prog, nil
}

// exec applies a non-input instruction to r.
func (ins Instruction) exec(r *Registers) error {
	b := ins.Imm
	if ins.Reg {
		b = r[ins.B]
	}
	a := &r[ins.A]
	switch ins.Op {
	case OpAdd:
		*a += b
	case OpMul:
		*a *= b
	case OpDiv:
		if b == 0 {
			return ErrDivideByZero
		}
		*a /= b
	case OpMod:
		if *a < 0 || b <= 0 {
			return ErrBadModulo
		}
		*a %= b
	case OpEql:
		if *a == b {
			*a = 1
		} else {
			*a = 0
		}
	}
	return nil
}

// Run executes prog with the given inputs and returns the final registers.
func Run(prog []Instruction, input []int) (Registers, error) {
	var r Registers
	for pc, ins := range prog {
		if ins.Op == OpInp {
			if len(input) == 0 {
				return r, fmt.Errorf("%w at instruction %d", ErrInputExhausted, pc+1)
			}
			r[ins.A], input = input[0], input[1:]
			continue
		}
		if err := ins.exec(&r); err != nil {
			return r, fmt.Errorf("instruction %d: %w", pc+1, err)
		}
	}
	return r, nil
}

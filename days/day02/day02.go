// Package day02 solves "Dive!": steering the submarine with
// forward/down/up commands.
package day02

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// ErrUnknownCommand is returned for any command other than forward, down or up.
var ErrUnknownCommand = errors.New("day02: unknown command")

// Command is one parsed instruction.
type Command struct {
	Dir   string
	Value int
}

func init() {
	puzzle.Register(2, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		cmds, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part1(cmds)
	})
	puzzle.Register(2, 2, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		cmds, err := Parse(in)
		if err != nil {
			return nil, err
		}
		return Part2(cmds)
	})
}

// Parse reads one "<dir> <value>" command per line.
func Parse(in []byte) ([]Command, error) {
	lines := parse.Lines(in)
	cmds := make([]Command, 0, len(lines))
	for i, line := range lines {
		f, err := parse.Fields(line, 2)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		v, err := parse.Int(f[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cmds = append(cmds, Command{Dir: f[0], Value: v})
	}
	return cmds, nil
}

// Part1 moves depth directly with down/up and returns position × depth.
func Part1(cmds []Command) (int, error) {
	var pos, depth int
	for _, c := range cmds {
		switch c.Dir {
		case "forward":
			pos += c.Value
		case "down":
			depth += c.Value
		case "up":
			depth -= c.Value
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, c.Dir)
		}
	}
	return pos * depth, nil
}

// Part2 treats down/up as changes to aim; forward dives by aim × value.
func Part2(cmds []Command) (int, error) {
	var pos, depth, aim int
	for _, c := range cmds {
		switch c.Dir {
		case "forward":
			pos += c.Value
			depth += aim * c.Value
		case "down":
			aim += c.Value
		case "up":
			aim -= c.Value
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, c.Dir)
		}
	}
	return pos * depth, nil
}

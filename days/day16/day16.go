// Package day16 solves "Packet Decoder": a recursive decoder for the BITS
// transmission format.
package day16

import (
	"context"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func init() {
	puzzle.Register(16, 1, func(_ context.Context, in []byte, _ puzzle.Options) (puzzle.Answer, error) {
		p, err := Decode(parse.Text(in))
		if err != nil {
			return nil, err
		}
		return p.VersionSum(), nil
	})
	puzzle.Register(16, 2, func(_ context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		p, err := Decode(parse.Text(in))
		if err != nil {
			return nil, err
		}
		if opts.Render {
			return p.String(), nil
		}
		return p.Value(), nil
	})
}

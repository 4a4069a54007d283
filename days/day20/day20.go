// Package day20 solves "Trench Map": repeated 3×3 image enhancement on an
// infinite canvas.
package day20

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/grid"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// Default step counts for the two parts.
const (
	Part1Steps = 2
	Part2Steps = 50
)

// AlgorithmSize is the number of entries in an enhancement algorithm.
const AlgorithmSize = 512

// ErrBadAlgorithm is returned for an algorithm line of the wrong length.
var ErrBadAlgorithm = errors.New("day20: algorithm must have 512 entries")

var glyphs = map[rune]uint8{'.': 0, '#': 1}

// Algorithm maps a 9-bit neighbourhood index to the output pixel.
type Algorithm [AlgorithmSize]uint8

// Image is a finite window onto an infinite image: every pixel outside
// Pixels has the value Background.
type Image struct {
	Pixels     *grid.Grid[uint8]
	Background uint8
}

func init() {
	puzzle.Register(20, 1, func(_ context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		return solve(in, opts.StepsOr(Part1Steps), opts.Render)
	})
	puzzle.Register(20, 2, func(_ context.Context, in []byte, opts puzzle.Options) (puzzle.Answer, error) {
		return solve(in, opts.StepsOr(Part2Steps), opts.Render)
	})
}

func solve(in []byte, steps int, render bool) (puzzle.Answer, error) {
	algo, img, err := Parse(in)
	if err != nil {
		return nil, err
	}
	img = algo.EnhanceN(img, steps)
	if render {
		return img.String(), nil
	}
	return img.Lit()
}

// Parse reads the algorithm block followed by the image block.
func Parse(in []byte) (*Algorithm, Image, error) {
	blocks := parse.Blocks(in)
	if len(blocks) != 2 {
		return nil, Image{}, parse.Malformed("want algorithm and image blocks, got %d blocks", len(blocks))
	}
	line := strings.Join(blocks[0], "")
	if len(line) != AlgorithmSize {
		return nil, Image{}, fmt.Errorf("%w: got %d", ErrBadAlgorithm, len(line))
	}
	var algo Algorithm
	for i, r := range line {
		v, ok := glyphs[r]
		if !ok {
			return nil, Image{}, parse.Malformed("algorithm entry %d is %q", i, r)
		}
		algo[i] = v
	}
	px, err := grid.ParseMapped(strings.Join(blocks[1], "\n"), grid.Glyphs(glyphs))
	if err != nil {
		return nil, Image{}, err
	}
	return &algo, Image{Pixels: px}, nil
}

// Enhance returns the next image. The window grows by one pixel on each
// side, and the background flips whenever the algorithm maps an all-dark
// (or all-lit) neighbourhood to the opposite value.
func (a *Algorithm) Enhance(img Image) Image {
	src := img.Pixels
	out, _ := grid.New[uint8](src.Width+2, src.Height+2)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			idx := 0
			for _, v := range src.Neighborhood(x-1, y-1, img.Background) {
				idx = idx<<1 | int(v)
			}
			out.Set(x, y, a[idx])
		}
	}
	bg := a[0]
	if img.Background == 1 {
		bg = a[AlgorithmSize-1]
	}
	return Image{Pixels: out, Background: bg}
}

// EnhanceN applies Enhance steps times.
func (a *Algorithm) EnhanceN(img Image, steps int) Image {
	for range steps {
		img = a.Enhance(img)
	}
	return img
}

// ErrInfinite is returned by Lit when the background is lit.
var ErrInfinite = errors.New("day20: infinitely many pixels are lit")

// Lit counts lit pixels.
func (img Image) Lit() (int, error) {
	if img.Background == 1 {
		return 0, ErrInfinite
	}
	return img.Pixels.Sum(), nil
}

// String draws the window with '#' for lit and '.' for dark.
func (img Image) String() string {
	return img.Pixels.Render(func(v uint8) byte {
		if v == 1 {
			return '#'
		}
		return '.'
	})
}

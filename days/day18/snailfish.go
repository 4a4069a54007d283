package day18

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2021/parse"
)

// explodeDepth is the nesting depth at which a pair's leaves explode.
const explodeDepth = 5

// splitAt is the smallest regular number that splits.
const splitAt = 10

// leaf is a regular number together with the count of pairs enclosing it.
type leaf struct {
	value int
	depth int
}

// Number is a snailfish number stored as its leaves in left-to-right order.
// The tree shape is fully determined by the leaf depths.
type Number []leaf

// Parse reads a snailfish number such as "[[1,2],3]".
func Parse(s string) (Number, error) {
	var (
		n     Number
		depth int
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth < 0 {
				return nil, parse.Malformed("unbalanced ']' at %d in %q", i, s)
			}
		case c == ',':
		case c >= '0' && c <= '9':
			v := 0
			for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
				v = v*10 + int(s[i]-'0')
			}
			i--
			n = append(n, leaf{value: v, depth: depth})
		default:
			return nil, parse.Malformed("unexpected %q at %d in %q", c, i, s)
		}
	}
	if depth != 0 || len(n) == 0 {
		return nil, parse.Malformed("unbalanced number %q", s)
	}
	if _, ok := n.shape(); !ok {
		return nil, parse.Malformed("%q is not a binary tree", s)
	}
	return n, nil
}

// Add returns the reduced sum of a and b; neither operand is modified.
func Add(a, b Number) Number {
	sum := make(Number, 0, len(a)+len(b))
	for _, l := range a {
		sum = append(sum, leaf{l.value, l.depth + 1})
	}
	for _, l := range b {
		sum = append(sum, leaf{l.value, l.depth + 1})
	}
	return sum.reduce()
}

// reduce applies the leftmost explode, or failing that the leftmost split,
// until neither applies.
func (n Number) reduce() Number {
	for {
		var ok bool
		if n, ok = n.explode(); ok {
			continue
		}
		if n, ok = n.split(); !ok {
			return n
		}
	}
}

// explode replaces the leftmost pair nested inside four others with 0,
// pushing its leaves onto the nearest regular numbers on either side.
func (n Number) explode() (Number, bool) {
	for i := 0; i+1 < len(n); i++ {
		if n[i].depth < explodeDepth {
			continue
		}
		if i > 0 {
			n[i-1].value += n[i].value
		}
		if i+2 < len(n) {
			n[i+2].value += n[i+1].value
		}
		n[i] = leaf{0, n[i].depth - 1}
		return append(n[:i+1], n[i+2:]...), true
	}
	return n, false
}

func (n Number) split() (Number, bool) {
	for i, l := range n {
		if l.value < splitAt {
			continue
		}
		out := make(Number, 0, len(n)+1)
		out = append(out, n[:i]...)
		out = append(out, leaf{l.value / 2, l.depth + 1}, leaf{(l.value + 1) / 2, l.depth + 1})
		out = append(out, n[i+1:]...)
		return out, true
	}
	return n, false
}

// Magnitude is 3×left + 2×right, applied recursively.
func (n Number) Magnitude() int {
	work := append(Number(nil), n...)
	for len(work) > 1 {
		deepest := 0
		for _, l := range work {
			deepest = max(deepest, l.depth)
		}
		for i := 0; i+1 < len(work); i++ {
			if work[i].depth == deepest {
				work[i] = leaf{3*work[i].value + 2*work[i+1].value, deepest - 1}
				work = append(work[:i+1], work[i+2:]...)
				break
			}
		}
	}
	return work[0].value
}

// String renders the number in bracket notation.
func (n Number) String() string {
	s, _ := n.shape()
	return s
}

// shape rebuilds the bracket notation and reports whether the leaf depths
// describe a complete binary tree.
func (n Number) shape() (string, bool) {
	var (
		sb  strings.Builder
		pos int
		ok  = true
	)
	var build func(d int)
	build = func(d int) {
		if !ok || pos >= len(n) || n[pos].depth < d {
			ok = false
			return
		}
		if n[pos].depth == d {
			sb.WriteString(strconv.Itoa(n[pos].value))
			pos++
			return
		}
		sb.WriteByte('[')
		build(d + 1)
		sb.WriteByte(',')
		build(d + 1)
		sb.WriteByte(']')
	}
	build(0)
	return sb.String(), ok && pos == len(n)
}

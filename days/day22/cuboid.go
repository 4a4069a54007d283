package day22

// Span is the half-open interval [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Len is the number of integers in s; empty spans have length 0.
func (s Span) Len() int { return max(0, s.Hi-s.Lo) }

func (s Span) intersect(o Span) Span {
	return Span{max(s.Lo, o.Lo), min(s.Hi, o.Hi)}
}

// Cuboid is a box of unit cubes, half-open on every axis.
type Cuboid struct {
	X, Y, Z Span
}

// Volume is the number of cubes in c.
func (c Cuboid) Volume() int {
	return c.X.Len() * c.Y.Len() * c.Z.Len()
}

// Empty reports whether c contains no cubes.
func (c Cuboid) Empty() bool { return c.Volume() == 0 }

// Intersect returns the overlap of c and o, which may be empty.
func (c Cuboid) Intersect(o Cuboid) Cuboid {
	return Cuboid{c.X.intersect(o.X), c.Y.intersect(o.Y), c.Z.intersect(o.Z)}
}

// Subtract returns up to six disjoint cuboids covering c minus o.
func (c Cuboid) Subtract(o Cuboid) []Cuboid {
	cut := c.Intersect(o)
	if cut.Empty() {
		return []Cuboid{c}
	}
	var out []Cuboid
	keep := func(p Cuboid) {
		if !p.Empty() {
			out = append(out, p)
		}
	}
	// Slabs below and above the cut along x take the full y and z extent,
	// then y slabs within the cut's x range, then z slabs within both.
	keep(Cuboid{Span{c.X.Lo, cut.X.Lo}, c.Y, c.Z})
	keep(Cuboid{Span{cut.X.Hi, c.X.Hi}, c.Y, c.Z})
	keep(Cuboid{cut.X, Span{c.Y.Lo, cut.Y.Lo}, c.Z})
	keep(Cuboid{cut.X, Span{cut.Y.Hi, c.Y.Hi}, c.Z})
	keep(Cuboid{cut.X, cut.Y, Span{c.Z.Lo, cut.Z.Lo}})
	keep(Cuboid{cut.X, cut.Y, Span{cut.Z.Hi, c.Z.Hi}})
	return out
}

package day19

import "github.com/katalvlaran/aoc2021/xmath"

// Rotation is a 3×3 signed permutation matrix with determinant +1.
type Rotation [3][3]int

// Apply returns r·p.
func (r Rotation) Apply(p xmath.Pt3Int) xmath.Pt3Int {
	v := [3]int{p.X, p.Y, p.Z}
	var out [3]int
	for i := range 3 {
		for j := range 3 {
			out[i] += r[i][j] * v[j]
		}
	}
	return xmath.Pt3Int{X: out[0], Y: out[1], Z: out[2]}
}

// rotations holds the 24 orientations a scanner may face.
var rotations = buildRotations()

// Rotations returns the 24 proper rotations that map axes onto axes.
func Rotations() []Rotation {
	return append([]Rotation(nil), rotations...)
}

func buildRotations() []Rotation {
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	// Parity of each permutation above.
	parity := []int{1, -1, -1, 1, 1, -1}

	out := make([]Rotation, 0, 24)
	for pi, p := range perms {
		for signs := range 8 {
			s := [3]int{1, 1, 1}
			det := parity[pi]
			for k := range 3 {
				if signs&(1<<k) != 0 {
					s[k] = -1
					det = -det
				}
			}
			if det != 1 {
				continue
			}
			var r Rotation
			for row := range 3 {
				r[row][p[row]] = s[row]
			}
			out = append(out, r)
		}
	}
	return out
}

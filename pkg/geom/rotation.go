package geom

// Rotation is one of the 24 proper rotations of 3-space that map axes onto axes.
// Each is stored as a signed permutation: component i of the result is
// sign[i] * p[axis[i]].
type Rotation struct {
	axis [3]int
	sign [3]int
}

// Rotations holds all 24 orientations. Rotations[0] is the identity.
var Rotations = buildRotations()

// Apply rotates p.
func (r Rotation) Apply(p Point3) Point3 {
	v := [3]int{p.X, p.Y, p.Z}
	return Point3{
		X: r.sign[0] * v[r.axis[0]],
		Y: r.sign[1] * v[r.axis[1]],
		Z: r.sign[2] * v[r.axis[2]],
	}
}

// buildRotations enumerates signed permutation matrices with determinant +1.
func buildRotations() []Rotation {
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1},
		{1, 0, 2}, {1, 2, 0},
		{2, 0, 1}, {2, 1, 0},
	}
	var out []Rotation
	for _, perm := range perms {
		for s := 0; s < 8; s++ {
			sign := [3]int{1, 1, 1}
			for i := 0; i < 3; i++ {
				if s&(1<<i) != 0 {
					sign[i] = -1
				}
			}
			if permParity(perm)*sign[0]*sign[1]*sign[2] == 1 {
				out = append(out, Rotation{axis: perm, sign: sign})
			}
		}
	}
	return out
}

// permParity returns +1 for even permutations and -1 for odd ones.
func permParity(p [3]int) int {
	inversions := 0
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if p[i] > p[j] {
				inversions++
			}
		}
	}
	if inversions%2 == 0 {
		return 1
	}
	return -1
}

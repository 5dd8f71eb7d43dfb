// Package geom provides small integer geometry types used by the puzzle units:
// 2D grid points, 3D points, and the 24 axis-aligned rotations of 3-space.
package geom

import "fmt"

// Point2 is a position on an integer grid. Y grows downward in puzzle grids.
type Point2 struct {
	X, Y int
}

// Add returns p+q.
func (p Point2) Add(q Point2) Point2 { return Point2{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point2) Sub(q Point2) Point2 { return Point2{p.X - q.X, p.Y - q.Y} }

func (p Point2) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Orthogonal lists the four unit steps up, down, left and right.
var Orthogonal = []Point2{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Neighbours8 lists the eight unit steps including diagonals.
var Neighbours8 = []Point2{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// InBounds reports whether p lies inside a width×height grid anchored at the origin.
func (p Point2) InBounds(width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}

// Point3 is a position in integer 3-space.
type Point3 struct {
	X, Y, Z int
}

// Add returns p+q.
func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns p-q.
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Manhattan returns the taxicab distance between p and q.
func (p Point3) Manhattan(q Point3) int {
	d := p.Sub(q)
	return abs(d.X) + abs(d.Y) + abs(d.Z)
}

// SquaredDistance returns |p-q|². It is invariant under rotation, which makes
// it usable as a fingerprint for point pairs seen from differently oriented frames.
func (p Point3) SquaredDistance(q Point3) int {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

func (p Point3) String() string { return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z) }

// Sign returns -1, 0 or 1.
func Sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Abs returns |n|.
func Abs(n int) int { return abs(n) }

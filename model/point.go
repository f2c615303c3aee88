package model

import (
	"cmp"
	"fmt"
)

// Point is an immutable 2D point with integer coordinates.
type Point struct {
	X int32
	Y int32
}

// P is shorthand for Point{X: x, Y: y}.
func P(x, y int32) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Translate returns p shifted by (dx, dy).
// Coordinates wrap on int32 overflow; callers keep offsets in range.
func (p Point) Translate(dx, dy int32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// LessXY orders points by X, then by Y.
func LessXY(a, b Point) bool {
	return a.X < b.X || (a.X == b.X && a.Y < b.Y)
}

// LessY orders points by Y only.
func LessY(a, b Point) bool {
	return a.Y < b.Y
}

// CompareXY is the three-way form of LessXY.
func CompareXY(a, b Point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// CompareY is the three-way form of LessY.
func CompareY(a, b Point) int {
	return cmp.Compare(a.Y, b.Y)
}

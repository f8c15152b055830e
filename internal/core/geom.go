// Package core provides fundamental types shared by the simulation engine and
// its host collaborators. It has no external dependencies so that game logic
// stays pure and testable.
package core

import (
	"fmt"
	"math"
)

// Point is a tile coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns the point one tile away in direction d.
func (p Point) Step(d Dir) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Offset returns the point n tiles away in direction d.
func (p Point) Offset(d Dir, n int) Point {
	return Point{X: p.X + d.X*n, Y: p.Y + d.Y*n}
}

// Manhattan returns the Manhattan distance to another point.
func (p Point) Manhattan(other Point) int {
	return Abs(p.X-other.X) + Abs(p.Y-other.Y)
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(float64(p.X-other.X), float64(p.Y-other.Y))
}

// Midpoint returns the midpoint between two points, rounded half away from zero.
func (p Point) Midpoint(other Point) Point {
	return Point{
		X: int(math.Round(float64(p.X+other.X) / 2)),
		Y: int(math.Round(float64(p.Y+other.Y) / 2)),
	}
}

// Dir is a unit movement vector with components in {-1, 0, 1}.
// The zero value means "stopped".
type Dir struct {
	X, Y int
}

// Axis directions and the stopped direction.
var (
	DirNone  = Dir{}
	DirRight = Dir{X: 1}
	DirLeft  = Dir{X: -1}
	DirDown  = Dir{Y: 1}
	DirUp    = Dir{Y: -1}
)

// Axes lists the four axis directions in the fixed enumeration order used
// for tie-breaking: right, left, down, up.
var Axes = [4]Dir{DirRight, DirLeft, DirDown, DirUp}

// IsZero reports whether the direction is stopped.
func (d Dir) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// Reverse returns the opposite direction.
func (d Dir) Reverse() Dir {
	return Dir{X: -d.X, Y: -d.Y}
}

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirNone:
		return "none"
	default:
		return fmt.Sprintf("(%d,%d)", d.X, d.Y)
	}
}

// NormalizeDir clamps (dx, dy) to a single-axis unit direction.
// When both axes are non-zero the horizontal axis wins.
func NormalizeDir(dx, dy int) Dir {
	dx = Clamp(dx, -1, 1)
	dy = Clamp(dy, -1, 1)
	if dx != 0 {
		return Dir{X: dx}
	}
	return Dir{Y: dy}
}

// Rect represents an axis-aligned rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Package geom holds the integer grid geometry shared by the map, the
// generators and the systems.
package geom

import "math"

// Point is a tile coordinate on the map grid
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Zero is the origin, also used as the "no movement" delta
var Zero = Point{}

// Unit deltas for the four axis-aligned directions. There is no diagonal
// movement anywhere in the game.
var (
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
)

// CardinalDeltas lists the four unit deltas in a fixed order
var CardinalDeltas = [4]Point{Left, Right, Up, Down}

// Add returns p + o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// IsZero reports whether p is the origin
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Distance returns the Pythagorean (Euclidean) distance between two points
func Distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared avoids the square root when only comparisons are needed
func DistanceSquared(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

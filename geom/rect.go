package geom

// Rect is an axis-aligned rectangle. X2 and Y2 are exclusive when iterating
// tiles, so a rect built WithSize(x, y, w, h) covers exactly w*h tiles.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// WithSize creates a rect from its top-left corner and dimensions
func WithSize(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width of the rect in tiles
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height of the rect in tiles
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Intersect reports whether two rects overlap or share an edge. Rooms placed
// with this test always keep at least one wall between them.
func (r Rect) Intersect(o Rect) bool {
	return r.X1 <= o.X2 && r.X2 >= o.X1 && r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}

// Center returns the middle tile of the rect
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains reports whether p is one of the rect's tiles
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// Each calls fn for every tile in the rect in row-major order
func (r Rect) Each(fn func(p Point)) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

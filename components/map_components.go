package components

import "dungeon-crawl/geom"

// TileType is what occupies one map cell
type TileType uint8

// Tile types
const (
	TileWall TileType = iota
	TileFloor
)

func (t TileType) String() string {
	switch t {
	case TileFloor:
		return "floor"
	default:
		return "wall"
	}
}

// Map stores the tile grid in row-major order plus the tiles that have ever
// been seen.
type Map struct {
	Width    int
	Height   int
	Tiles    []TileType
	Revealed []bool
}

// NewMap creates a map filled with fill
func NewMap(width, height int, fill TileType) *Map {
	m := &Map{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileType, width*height),
		Revealed: make([]bool, width*height),
	}
	m.Fill(fill)
	return m
}

// Index converts a coordinate to a tile index
func (m *Map) Index(x, y int) int {
	return y*m.Width + x
}

// PointAt converts a tile index back to a coordinate
func (m *Map) PointAt(idx int) geom.Point {
	return geom.Point{X: idx % m.Width, Y: idx / m.Width}
}

// InBounds checks whether p lies inside the map
func (m *Map) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// TryIndex returns the index of p when it is in bounds
func (m *Map) TryIndex(p geom.Point) (int, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.Index(p.X, p.Y), true
}

// CanEnterTile checks whether p is in bounds and walkable. Occupancy is not
// considered here.
func (m *Map) CanEnterTile(p geom.Point) bool {
	idx, ok := m.TryIndex(p)
	return ok && m.Tiles[idx] == TileFloor
}

// Tile returns the tile at p; out-of-bounds reads as Wall
func (m *Map) Tile(p geom.Point) TileType {
	idx, ok := m.TryIndex(p)
	if !ok {
		return TileWall
	}
	return m.Tiles[idx]
}

// SetTile sets the tile at p, ignoring out-of-bounds writes
func (m *Map) SetTile(p geom.Point, t TileType) {
	if idx, ok := m.TryIndex(p); ok {
		m.Tiles[idx] = t
	}
}

// Fill sets every tile to t
func (m *Map) Fill(t TileType) {
	for i := range m.Tiles {
		m.Tiles[i] = t
	}
}

// IsOpaque reports whether p blocks line of sight
func (m *Map) IsOpaque(p geom.Point) bool {
	return m.Tile(p) == TileWall
}

// Reveal records p as explored
func (m *Map) Reveal(p geom.Point) {
	if idx, ok := m.TryIndex(p); ok {
		m.Revealed[idx] = true
	}
}

// IsRevealed reports whether p has ever been seen
func (m *Map) IsRevealed(p geom.Point) bool {
	idx, ok := m.TryIndex(p)
	return ok && m.Revealed[idx]
}

// FloorCount returns the number of walkable tiles
func (m *Map) FloorCount() int {
	n := 0
	for _, t := range m.Tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}

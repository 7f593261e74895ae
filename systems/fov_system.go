package systems

import (
	"github.com/zyedidia/generic/mapset"

	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
	"dungeon-crawl/geom"
)

// FOVSystem handles field of vision calculations
type FOVSystem struct{}

// NewFOVSystem creates a new FOV system
func NewFOVSystem() *FOVSystem {
	return &FOVSystem{}
}

// Name identifies the system in schedules
func (s *FOVSystem) Name() string { return "fov" }

// Update recomputes every dirty field of view and records what was seen on
// the map
func (s *FOVSystem) Update(w *World) error {
	w.Registry.FOVs.Each(func(e ecs.Entity, fov *components.FieldOfView) {
		if !fov.Dirty {
			return
		}
		pos, ok := w.Registry.PositionOf(e)
		if !ok {
			return
		}

		fov.VisibleTiles = VisibleTiles(w.Map, pos, fov.Radius)
		fov.Dirty = false

		fov.VisibleTiles.Each(func(p geom.Point) {
			w.Map.Reveal(p)
		})
	})
	return nil
}

// VisibleTiles returns the tiles within Euclidean radius of origin that have
// a clear line of sight. Walls block what lies behind them but are visible
// themselves.
func VisibleTiles(m *components.Map, origin geom.Point, radius int) mapset.Set[geom.Point] {
	visible := mapset.New[geom.Point]()
	if !m.InBounds(origin) {
		return visible
	}
	visible.Put(origin)

	r2 := radius * radius
	for y := origin.Y - radius; y <= origin.Y+radius; y++ {
		for x := origin.X - radius; x <= origin.X+radius; x++ {
			target := geom.Pt(x, y)
			if !m.InBounds(target) || geom.DistanceSquared(origin, target) > r2 {
				continue
			}
			if lineOfSight(m, origin, target) {
				visible.Put(target)
			}
		}
	}

	return visible
}

// lineOfSight walks a Bresenham line from origin to target and fails if any
// tile strictly between them is opaque
func lineOfSight(m *components.Map, origin, target geom.Point) bool {
	dx := abs(target.X - origin.X)
	dy := -abs(target.Y - origin.Y)
	sx, sy := 1, 1
	if origin.X > target.X {
		sx = -1
	}
	if origin.Y > target.Y {
		sy = -1
	}

	x, y := origin.X, origin.Y
	err := dx + dy
	for {
		if x == target.X && y == target.Y {
			return true
		}
		if (x != origin.X || y != origin.Y) && m.IsOpaque(geom.Pt(x, y)) {
			return false
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

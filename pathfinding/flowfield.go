// Package pathfinding computes flow fields: per-tile step counts outward from
// one or more goal tiles over the 4-connected walkable grid.
package pathfinding

import (
	"math"

	"dungeon-crawl/components"
	"dungeon-crawl/geom"
)

// Unreachable marks tiles the search never reached or that lie beyond the cap
const Unreachable = math.MaxFloat64

// DefaultMaxDepth bounds every search
const DefaultMaxDepth = 1024

// FlowField stores the distance from each tile to the nearest goal
type FlowField struct {
	Width     int
	Height    int
	Distances []float64
	MaxDepth  float64
}

// Build expands breadth-first from every goal index with unit step cost.
// Goals outside the map or on walls are ignored.
func Build(m *components.Map, goals []int, maxDepth float64) *FlowField {
	f := &FlowField{
		Width:     m.Width,
		Height:    m.Height,
		Distances: make([]float64, len(m.Tiles)),
		MaxDepth:  maxDepth,
	}
	for i := range f.Distances {
		f.Distances[i] = Unreachable
	}

	queue := make([]int, 0, len(goals))
	for _, g := range goals {
		if g < 0 || g >= len(m.Tiles) || m.Tiles[g] != components.TileFloor {
			continue
		}
		if f.Distances[g] == 0 {
			continue
		}
		f.Distances[g] = 0
		queue = append(queue, g)
	}

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		next := f.Distances[idx] + 1
		if next > maxDepth {
			continue
		}
		for _, n := range exits(m, idx) {
			if f.Distances[n] > next {
				f.Distances[n] = next
				queue = append(queue, n)
			}
		}
	}

	return f
}

// BuildFrom is Build rooted at a single point with the default cap
func BuildFrom(m *components.Map, source geom.Point) *FlowField {
	idx, ok := m.TryIndex(source)
	if !ok {
		return Build(m, nil, DefaultMaxDepth)
	}
	return Build(m, []int{idx}, DefaultMaxDepth)
}

// Reachable reports whether the tile at idx has a finite distance
func (f *FlowField) Reachable(idx int) bool {
	return idx >= 0 && idx < len(f.Distances) && f.Distances[idx] < Unreachable
}

// DistanceAt returns the distance stored for p
func (f *FlowField) DistanceAt(p geom.Point) float64 {
	if p.X < 0 || p.X >= f.Width || p.Y < 0 || p.Y >= f.Height {
		return Unreachable
	}
	return f.Distances[p.Y*f.Width+p.X]
}

// exits returns the walkable neighbors of idx in west, east, north, south order
func exits(m *components.Map, idx int) []int {
	origin := m.PointAt(idx)
	out := make([]int, 0, len(geom.CardinalDeltas))
	for _, d := range geom.CardinalDeltas {
		p := origin.Add(d)
		if m.CanEnterTile(p) {
			out = append(out, m.Index(p.X, p.Y))
		}
	}
	return out
}

// FindLowestExit returns the walkable neighbor of idx with the smallest
// distance, provided it is strictly smaller than idx's own. Ties go to the
// first neighbor in west, east, north, south order. It reports false at the
// goal itself and on tiles the field never reached.
func FindLowestExit(f *FlowField, m *components.Map, idx int) (int, bool) {
	if !f.Reachable(idx) {
		return 0, false
	}

	best, bestDist := -1, f.Distances[idx]
	for _, n := range exits(m, idx) {
		if f.Distances[n] < bestDist {
			best, bestDist = n, f.Distances[n]
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// MostDistant returns the reachable tile farthest from source. Among equally
// distant tiles the lowest index wins.
func MostDistant(m *components.Map, source geom.Point) (geom.Point, bool) {
	f := BuildFrom(m, source)

	best, bestDist := -1, -1.0
	for i, d := range f.Distances {
		if d < Unreachable && d > bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return geom.Point{}, false
	}
	return m.PointAt(best), true
}

// ReachableFrom returns, per tile index, whether it can be walked to from
// start. The search is uncapped.
func ReachableFrom(m *components.Map, start geom.Point) []bool {
	out := make([]bool, len(m.Tiles))
	idx, ok := m.TryIndex(start)
	if !ok {
		return out
	}
	f := Build(m, []int{idx}, float64(len(m.Tiles)))
	for i, d := range f.Distances {
		out[i] = d < Unreachable
	}
	return out
}

package generation

import (
	"fmt"

	"dungeon-crawl/components"
	"dungeon-crawl/geom"
)

// GenerateCellularDungeon creates a cave with cellular automata. The player
// starts in the largest 4-connected floor region; smaller pockets are left
// as they are.
func (g *DungeonGenerator) GenerateCellularDungeon() (*MapBuilder, error) {
	mb := g.newBuilder(ArchitectCellularAutomata)
	m := mb.Map

	// Initialize map with random walls
	for i := range m.Tiles {
		if g.rng.Range(0, 100) < g.cfg.WallChance {
			m.Tiles[i] = components.TileWall
		} else {
			m.Tiles[i] = components.TileFloor
		}
	}

	for pass := 0; pass < g.cfg.SmoothingPasses; pass++ {
		g.smooth(m)
	}

	// Seal the border
	for x := 0; x < m.Width; x++ {
		m.SetTile(geom.Pt(x, 0), components.TileWall)
		m.SetTile(geom.Pt(x, m.Height-1), components.TileWall)
	}
	for y := 0; y < m.Height; y++ {
		m.SetTile(geom.Pt(0, y), components.TileWall)
		m.SetTile(geom.Pt(m.Width-1, y), components.TileWall)
	}

	region := largestRegion(m)
	if len(region) == 0 {
		return nil, fmt.Errorf("cellular automata left no floor: %w", ErrGenerationExhausted)
	}

	// Start on the region tile closest to the centre
	center := g.center()
	best := region[0]
	bestDist := geom.DistanceSquared(m.PointAt(best), center)
	for _, idx := range region[1:] {
		if d := geom.DistanceSquared(m.PointAt(idx), center); d < bestDist {
			best, bestDist = idx, d
		}
	}
	mb.PlayerStart = m.PointAt(best)

	return mb, nil
}

// smooth applies one pass of the wall rule to every interior tile, reading
// from a snapshot of the previous pass
func (g *DungeonGenerator) smooth(m *components.Map) {
	next := make([]components.TileType, len(m.Tiles))
	copy(next, m.Tiles)

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			walls := countAdjacentWalls(m, x, y)
			if walls > g.cfg.WallThreshold || walls == 0 {
				next[m.Index(x, y)] = components.TileWall
			} else {
				next[m.Index(x, y)] = components.TileFloor
			}
		}
	}

	m.Tiles = next
}

// countAdjacentWalls counts the wall tiles among the eight neighbours of a
// position. Edges count as walls.
func countAdjacentWalls(m *components.Map, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if m.Tile(geom.Pt(x+dx, y+dy)) == components.TileWall {
				count++
			}
		}
	}
	return count
}

// largestRegion returns the tile indices of the biggest 4-connected floor
// region, ordered by discovery. Ties go to the region found first in index
// order.
func largestRegion(m *components.Map) []int {
	visited := make([]bool, len(m.Tiles))
	var largest []int

	for start, t := range m.Tiles {
		if visited[start] || t != components.TileFloor {
			continue
		}
		region := floodFill(m, start, visited)
		if len(region) > len(largest) {
			largest = region
		}
	}

	return largest
}

// floodFill collects the floor region containing start
func floodFill(m *components.Map, start int, visited []bool) []int {
	visited[start] = true
	region := []int{start}

	for head := 0; head < len(region); head++ {
		p := m.PointAt(region[head])
		for _, d := range geom.CardinalDeltas {
			n := p.Add(d)
			idx, ok := m.TryIndex(n)
			if !ok || visited[idx] || m.Tiles[idx] != components.TileFloor {
				continue
			}
			visited[idx] = true
			region = append(region, idx)
		}
	}

	return region
}

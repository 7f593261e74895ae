package generation

import (
	"fmt"

	"dungeon-crawl/components"
	"dungeon-crawl/geom"
	"dungeon-crawl/pathfinding"
)

// GenerateDrunkardsWalk carves the map with random walks until enough of it
// is floor. After every walk, floor the centre cannot reach is filled back in
// so the carved area stays one region.
func (g *DungeonGenerator) GenerateDrunkardsWalk() (*MapBuilder, error) {
	mb := g.newBuilder(ArchitectDrunkardsWalk)
	center := g.center()
	desired := int(float64(g.cfg.MapWidth*g.cfg.MapHeight) * g.cfg.DrunkardCoverage)

	g.stagger(mb.Map, center)
	for walks := 1; mb.Map.FloorCount() < desired; walks++ {
		if walks >= g.cfg.DrunkardWalks {
			return nil, fmt.Errorf("carved %d of %d tiles in %d walks: %w",
				mb.Map.FloorCount(), desired, walks, ErrGenerationExhausted)
		}

		g.stagger(mb.Map, geom.Pt(
			g.rng.Range(1, g.cfg.MapWidth-1),
			g.rng.Range(1, g.cfg.MapHeight-1),
		))

		reachable := pathfinding.ReachableFrom(mb.Map, center)
		for i, t := range mb.Map.Tiles {
			if t == components.TileFloor && !reachable[i] {
				mb.Map.Tiles[i] = components.TileWall
			}
		}
	}

	mb.PlayerStart = center
	return mb, nil
}

// stagger walks from start carving floor until it leaves the interior or
// takes the configured number of steps
func (g *DungeonGenerator) stagger(m *components.Map, start geom.Point) {
	pos := start
	for step := 0; step <= g.cfg.StaggerDistance; step++ {
		m.SetTile(pos, components.TileFloor)
		pos = pos.Add(geom.CardinalDeltas[g.rng.Index(len(geom.CardinalDeltas))])
		if !g.interior(pos) {
			return
		}
	}
}

package generation

import (
	"sort"
	"strings"

	"dungeon-crawl/components"
	"dungeon-crawl/geom"
	"dungeon-crawl/pathfinding"
)

// Prefab is a fixed structure stamped onto a generated map.
// '#' is wall, '-' is floor and 'M' is floor with a guard spawn.
type Prefab struct {
	Name   string
	Width  int
	Height int
	Layout []string
}

// Fortress is the walled keep placed far from the player
var Fortress = Prefab{
	Name:   "fortress",
	Width:  12,
	Height: 11,
	Layout: []string{
		"------------",
		"---######---",
		"---#----#---",
		"---#-M--#---",
		"-###----###-",
		"--M------M--",
		"-###----###-",
		"---#----#---",
		"---#----#---",
		"---######---",
		"------------",
	},
}

func (p Prefab) glyphAt(x, y int) byte {
	return p.Layout[y][x]
}

// guards returns the guard spawn offsets in row-major order
func (p Prefab) guards() []geom.Point {
	var out []geom.Point
	for y, row := range p.Layout {
		for x := 0; x < len(row); x++ {
			if row[x] == 'M' {
				out = append(out, geom.Pt(x, y))
			}
		}
	}
	return out
}

func (p Prefab) String() string {
	return strings.Join(p.Layout, "\n")
}

// ApplyPrefab tries to stamp prefab near the tile farthest from the player.
// Candidates are drawn at random; one qualifies when at least one tile under
// it is reachable at a path distance inside the configured bounds and it does
// not cover the farthest tile itself. Qualifying candidates are tried nearest
// first, and a stamp that cuts any reachable tile off from the start is
// reverted. It returns whether a prefab was placed.
func (g *DungeonGenerator) ApplyPrefab(mb *MapBuilder, prefab Prefab) bool {
	m := mb.Map
	field := pathfinding.BuildFrom(m, mb.PlayerStart)
	target, ok := pathfinding.MostDistant(m, mb.PlayerStart)
	if !ok {
		return false
	}

	var candidates []geom.Rect
	for attempt := 0; attempt < g.cfg.PrefabAttempts; attempt++ {
		area := geom.WithSize(
			g.rng.Range(1, m.Width-prefab.Width),
			g.rng.Range(1, m.Height-prefab.Height),
			prefab.Width,
			prefab.Height,
		)
		if area.Contains(target) || area.Contains(mb.PlayerStart) {
			continue
		}

		canPlace := false
		area.Each(func(p geom.Point) {
			d := field.DistanceAt(p)
			if d > g.cfg.PrefabMinDist && d < g.cfg.PrefabMaxDist {
				canPlace = true
			}
		})
		if canPlace {
			candidates = append(candidates, area)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return geom.DistanceSquared(candidates[i].Center(), target) <
			geom.DistanceSquared(candidates[j].Center(), target)
	})

	before := pathfinding.ReachableFrom(m, mb.PlayerStart)
	for _, area := range candidates {
		saved := make([]components.TileType, len(m.Tiles))
		copy(saved, m.Tiles)

		g.stamp(m, area, prefab)
		if !severs(m, mb.PlayerStart, before) {
			placed := area
			mb.Prefab = &placed
			g.logger.Debug("prefab placed", "prefab", prefab.Name, "x", area.X1, "y", area.Y1)
			return true
		}
		m.Tiles = saved
	}

	g.logger.Debug("prefab skipped", "prefab", prefab.Name, "candidates", len(candidates))
	return false
}

func (g *DungeonGenerator) stamp(m *components.Map, area geom.Rect, prefab Prefab) {
	area.Each(func(p geom.Point) {
		switch prefab.glyphAt(p.X-area.X1, p.Y-area.Y1) {
		case '#':
			m.SetTile(p, components.TileWall)
		default:
			m.SetTile(p, components.TileFloor)
		}
	})
}

// severs reports whether a tile that was reachable and is still floor can no
// longer be reached from start
func severs(m *components.Map, start geom.Point, before []bool) bool {
	after := pathfinding.ReachableFrom(m, start)
	for i, was := range before {
		if was && m.Tiles[i] == components.TileFloor && !after[i] {
			return true
		}
	}
	return false
}

// GuardSpawns returns the prefab's guard tiles that satisfy the spawn rules
func (g *DungeonGenerator) GuardSpawns(mb *MapBuilder, prefab Prefab) []geom.Point {
	if mb.Prefab == nil {
		return nil
	}
	var out []geom.Point
	for _, off := range prefab.guards() {
		p := geom.Pt(mb.Prefab.X1+off.X, mb.Prefab.Y1+off.Y)
		if spawnable(mb.Map, mb.PlayerStart, p, g.cfg.SpawnMinDistance) {
			out = append(out, p)
		}
	}
	return out
}

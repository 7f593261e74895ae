package generation

import (
	"fmt"

	"dungeon-crawl/components"
	"dungeon-crawl/geom"
	"dungeon-crawl/rng"
)

// spawnable checks whether a monster may be placed on p
func spawnable(m *components.Map, start, p geom.Point, minDist float64) bool {
	return m.CanEnterTile(p) && geom.Distance(start, p) > minDist
}

// spawnCandidates returns every spawnable tile in index order, minus skip
func spawnCandidates(m *components.Map, start geom.Point, minDist float64, skip func(geom.Point) bool) []geom.Point {
	var out []geom.Point
	for idx := range m.Tiles {
		p := m.PointAt(idx)
		if !spawnable(m, start, p, minDist) {
			continue
		}
		if skip != nil && skip(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// drawSpawns picks count candidates uniformly without replacement
func drawSpawns(candidates []geom.Point, r *rng.RNG, count int) ([]geom.Point, error) {
	if count > len(candidates) {
		return nil, fmt.Errorf("want %d spawn points, have %d: %w", count, len(candidates), ErrSpawnExhausted)
	}

	spawns := make([]geom.Point, 0, count)
	for i := 0; i < count; i++ {
		pick := r.Index(len(candidates))
		spawns = append(spawns, candidates[pick])
		candidates = append(candidates[:pick], candidates[pick+1:]...)
	}
	return spawns, nil
}

// SpawnMonsters picks count distinct floor tiles farther than minDist from
// start
func SpawnMonsters(m *components.Map, start geom.Point, r *rng.RNG, count int, minDist float64) ([]geom.Point, error) {
	return drawSpawns(spawnCandidates(m, start, minDist, nil), r, count)
}

// spawnMonsters fills mb.MonsterSpawns with count points. Prefab guards come
// first and the rest are drawn from outside the prefab. Nothing spawns on the
// amulet.
func (g *DungeonGenerator) spawnMonsters(mb *MapBuilder, guards []geom.Point, count int) error {
	kept := make([]geom.Point, 0, len(guards))
	for _, p := range guards {
		if p != mb.AmuletStart {
			kept = append(kept, p)
		}
	}
	guards = kept
	if len(guards) > count {
		guards = guards[:count]
	}

	taken := make(map[geom.Point]bool, len(guards)+1)
	taken[mb.AmuletStart] = true
	for _, p := range guards {
		taken[p] = true
	}
	skip := func(p geom.Point) bool {
		return taken[p] || (mb.Prefab != nil && mb.Prefab.Contains(p))
	}
	drawn, err := drawSpawns(spawnCandidates(mb.Map, mb.PlayerStart, g.cfg.SpawnMinDistance, skip), g.rng, count-len(guards))
	if err != nil {
		return err
	}

	mb.MonsterSpawns = append(append([]geom.Point{}, guards...), drawn...)
	return nil
}

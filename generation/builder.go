package generation

import (
	"errors"
	"fmt"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/geom"
	"dungeon-crawl/pathfinding"
	"dungeon-crawl/rng"
)

// MapBuilder is the output of a generation run
type MapBuilder struct {
	Map           *components.Map
	Rooms         []geom.Rect
	MonsterSpawns []geom.Point
	PlayerStart   geom.Point
	AmuletStart   geom.Point
	Theme         Theme
	Architect     Architect
	Prefab        *geom.Rect
}

// FindMostDistant returns the reachable tile farthest from source
func (mb *MapBuilder) FindMostDistant(source geom.Point) (geom.Point, error) {
	p, ok := pathfinding.MostDistant(mb.Map, source)
	if !ok {
		return geom.Point{}, fmt.Errorf("nothing reachable from %v: %w", source, ErrGenerationExhausted)
	}
	return p, nil
}

// NewMapBuilder generates a complete level with the default generator
func NewMapBuilder(cfg config.Game, r *rng.RNG) (*MapBuilder, error) {
	return NewDungeonGenerator(cfg, r).NewMapBuilder()
}

// NewMapBuilder picks an architect at random among rooms, drunkard's walk and
// cellular automata, falling back through the others and finally the empty
// architect when one is exhausted. It then stamps the fortress, picks a theme
// and places the amulet and monster spawns.
func (g *DungeonGenerator) NewMapBuilder() (*MapBuilder, error) {
	choices := []Architect{ArchitectRooms, ArchitectDrunkardsWalk, ArchitectCellularAutomata}
	first := g.rng.Index(len(choices))

	order := []Architect{choices[first]}
	for i, a := range choices {
		if i != first {
			order = append(order, a)
		}
	}
	order = append(order, ArchitectEmpty)

	var mb *MapBuilder
	for _, kind := range order {
		built, err := g.Build(kind)
		if errors.Is(err, ErrGenerationExhausted) {
			g.logger.Warn("architect exhausted, falling back", "architect", kind.String(), "error", err)
			continue
		}
		if err != nil {
			return nil, err
		}
		mb = built
		break
	}
	if mb == nil {
		return nil, fmt.Errorf("every architect failed: %w", ErrGenerationExhausted)
	}

	g.ApplyPrefab(mb, Fortress)
	mb.Theme = Themes[g.rng.Index(len(Themes))]

	amulet, err := mb.FindMostDistant(mb.PlayerStart)
	if err != nil {
		return nil, err
	}
	mb.AmuletStart = amulet

	if err := g.spawnMonsters(mb, g.GuardSpawns(mb, Fortress), g.cfg.MonsterCount); err != nil {
		return nil, err
	}

	g.logger.Info("level generated",
		"architect", mb.Architect.String(),
		"theme", mb.Theme.String(),
		"rooms", len(mb.Rooms),
		"floor", mb.Map.FloorCount(),
		"prefab", mb.Prefab != nil,
		"spawns", len(mb.MonsterSpawns),
	)
	return mb, nil
}

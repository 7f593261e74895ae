package spawners

import (
	"fmt"
	"image/color"
	"log/slog"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/data"
	"dungeon-crawl/ecs"
	"dungeon-crawl/generation"
	"dungeon-crawl/geom"
	"dungeon-crawl/rng"
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	reg      *components.Registry
	bestiary *data.Bestiary
	cfg      config.Game
	logger   *slog.Logger
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(reg *components.Registry, bestiary *data.Bestiary, cfg config.Game, logger *slog.Logger) *EntitySpawner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EntitySpawner{
		reg:      reg,
		bestiary: bestiary,
		cfg:      cfg,
		logger:   logger,
	}
}

// CreatePlayer creates a player entity at the given position
func (s *EntitySpawner) CreatePlayer(p geom.Point) ecs.Entity {
	return s.reg.Spawn(
		components.Player{},
		components.At(p),
		components.Render{Color: color.RGBA{255, 255, 255, 255}, Glyph: '@'},
		components.Health{Current: s.cfg.PlayerHealth, Max: s.cfg.PlayerHealth},
		components.Name("Player"),
		components.NewFieldOfView(s.cfg.PlayerFOVRadius),
	)
}

// CreateAmulet places the Amulet of Yala
func (s *EntitySpawner) CreateAmulet(p geom.Point) ecs.Entity {
	return s.reg.Spawn(
		components.Item{},
		components.AmuletOfYala{},
		components.At(p),
		components.Render{Color: color.RGBA{255, 215, 0, 255}, Glyph: '|'},
		components.Name("Amulet of Yala"),
	)
}

// CreateMonster creates a monster from a template
func (s *EntitySpawner) CreateMonster(p geom.Point, tpl data.MonsterTemplate) ecs.Entity {
	e := s.reg.Spawn(
		components.Enemy{},
		components.At(p),
		components.Render{Color: tpl.Color, Glyph: tpl.Glyph},
		components.Health{Current: tpl.HP, Max: tpl.HP},
		components.Name(tpl.Name),
		components.NewFieldOfView(s.cfg.MonsterFOVRadius),
	)

	switch tpl.AI {
	case data.AIChase:
		s.reg.Attach(e, components.ChasingPlayer{})
	default:
		s.reg.Attach(e, components.MovingRandomly{})
	}
	return e
}

// Populate spawns the player, the amulet and one monster per spawn point
func (s *EntitySpawner) Populate(mb *generation.MapBuilder, r *rng.RNG) error {
	if s.bestiary == nil || len(s.bestiary.Templates) == 0 {
		return fmt.Errorf("populate: empty bestiary")
	}

	s.CreatePlayer(mb.PlayerStart)
	s.CreateAmulet(mb.AmuletStart)
	for _, p := range mb.MonsterSpawns {
		s.CreateMonster(p, s.bestiary.Choose(r))
	}

	s.logger.Debug("level populated",
		"player", mb.PlayerStart,
		"amulet", mb.AmuletStart,
		"monsters", len(mb.MonsterSpawns),
	)
	return nil
}

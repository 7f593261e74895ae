package engine

import (
	"fmt"
	"log/slog"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/data"
	"dungeon-crawl/ecs"
	"dungeon-crawl/generation"
	"dungeon-crawl/geom"
	"dungeon-crawl/rng"
	"dungeon-crawl/spawners"
	"dungeon-crawl/systems"
)

// Options configures a new simulation
type Options struct {
	Config config.Game
	Logger *slog.Logger
	// Bestiary overrides the embedded monster list when set
	Bestiary *data.Bestiary
}

// State owns one running game: the world, the RNG stream and the schedules
// for each turn state.
type State struct {
	cfg      config.Game
	logger   *slog.Logger
	bestiary *data.Bestiary
	rng      *rng.RNG

	events *ecs.EventManager
	log    *systems.MessageLog

	world     *systems.World
	architect generation.Architect

	schedules map[systems.TurnState]*systems.Schedule
}

// New builds the first level and populates it
func New(opts Options) (*State, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	bestiary := opts.Bestiary
	if bestiary == nil {
		b, err := data.LoadBestiary()
		if err != nil {
			return nil, fmt.Errorf("load bestiary: %w", err)
		}
		bestiary = b
	}

	s := &State{
		cfg:      opts.Config,
		logger:   logger,
		bestiary: bestiary,
		rng:      rng.New(opts.Config.Seed),
		events:   ecs.NewEventManager(),
		log:      systems.NewMessageLog(),
		schedules: map[systems.TurnState]*systems.Schedule{
			systems.AwaitingInput: systems.InputSchedule(),
			systems.PlayerTurn:    systems.PlayerSchedule(),
			systems.MonsterTurn:   systems.MonsterSchedule(),
		},
	}
	systems.SubscribeNarration(s.events, s.log)
	for state, schedule := range s.schedules {
		logger.Debug("schedule", "state", state.String(), "steps", schedule.Steps())
	}

	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the current level and builds a fresh one, continuing the
// same RNG stream. The message log survives.
func (s *State) Reset() error {
	gen := generation.NewDungeonGenerator(s.cfg, s.rng)
	gen.SetLogger(s.logger)

	mb, err := gen.NewMapBuilder()
	if err != nil {
		return fmt.Errorf("build level: %w", err)
	}

	w := systems.NewWorld(s.cfg, mb.Map, s.rng)
	if s.world != nil {
		// Keep the allocator so handles from the old level stay stale
		s.world.Registry.Clear()
		w.Registry = s.world.Registry
	}
	w.Theme = mb.Theme
	w.Events = s.events
	w.Log = s.log

	spawner := spawners.NewEntitySpawner(w.Registry, s.bestiary, s.cfg, s.logger)
	if err := spawner.Populate(mb, s.rng); err != nil {
		return err
	}

	setup := systems.NewSchedule("setup").
		AddSystem(systems.NewFOVSystem()).
		Flush().
		AddSystem(systems.NewCameraSystem())
	if err := setup.Run(w); err != nil {
		return err
	}

	s.world = w
	s.architect = mb.Architect
	w.EmitEvent(systems.ResetEvent{Seed: s.cfg.Seed})

	s.logger.Info("level ready",
		"seed", s.rng.Seed(),
		"architect", mb.Architect.String(),
		"theme", mb.Theme.String(),
		"entities", w.Registry.Len(),
		"rng_draws", s.rng.Position(),
	)
	return nil
}

// Tick advances the simulation by one schedule run. In GameOver or Victory
// only KeyConfirm does anything: it starts a new level.
func (s *State) Tick(key systems.Key) error {
	w := s.world
	if w.State.Terminal() {
		if key == systems.KeyConfirm {
			return s.Reset()
		}
		return nil
	}

	schedule, ok := s.schedules[w.State]
	if !ok {
		return fmt.Errorf("no schedule for state %s", w.State)
	}

	w.Key = key
	defer func() { w.Key = systems.KeyNone }()
	return schedule.Run(w)
}

// Map returns the current level
func (s *State) Map() *components.Map {
	return s.world.Map
}

// Theme returns the current level's theme
func (s *State) Theme() generation.Theme {
	return s.world.Theme
}

// Architect reports which architect built the current level
func (s *State) Architect() generation.Architect {
	return s.architect
}

// TurnState returns the scheduler state
func (s *State) TurnState() systems.TurnState {
	return s.world.State
}

// PlayerHealth returns the player's hit points
func (s *State) PlayerHealth() (components.Health, bool) {
	player, err := s.world.Registry.Player()
	if err != nil {
		return components.Health{}, false
	}
	return s.world.Registry.Healths.Get(player)
}

// PlayerPosition returns where the player stands
func (s *State) PlayerPosition() (geom.Point, bool) {
	player, err := s.world.Registry.Player()
	if err != nil {
		return geom.Point{}, false
	}
	return s.world.Registry.PositionOf(player)
}

// PlayerFOV returns the player's current view
func (s *State) PlayerFOV() (components.FieldOfView, bool) {
	player, err := s.world.Registry.Player()
	if err != nil {
		return components.FieldOfView{}, false
	}
	return s.world.Registry.FOVs.Get(player)
}

// Renderables lists everything with a position and a glyph
func (s *State) Renderables() []components.Renderable {
	return s.world.Registry.Renderables()
}

// Viewport returns a copy of the camera window
func (s *State) Viewport() systems.Viewport {
	return *s.world.Camera
}

// Messages returns up to n log entries, newest first
func (s *State) Messages(n int) []systems.ColoredMessage {
	return s.log.RecentMessages(n)
}

// Describe returns tooltip lines for map point p
func (s *State) Describe(p geom.Point) []string {
	return systems.Describe(s.world.Registry, p)
}

// Registry exposes the entity store
func (s *State) Registry() *components.Registry {
	return s.world.Registry
}

// World exposes the whole system bundle
func (s *State) World() *systems.World {
	return s.world
}

// Events exposes the event bus, which outlives resets
func (s *State) Events() *ecs.EventManager {
	return s.events
}

package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/ecs"
	"dungeon-crawl/generation"
	"dungeon-crawl/rng"
)

// World bundles the registry with the singletons every system shares.
// Exactly one schedule touches it per tick.
type World struct {
	Registry *components.Registry
	Commands *components.CommandBuffer
	Map      *components.Map
	Theme    generation.Theme
	State    TurnState
	Key      Key
	RNG      *rng.RNG
	Events   *ecs.EventManager
	Log      *MessageLog
	Camera   *Viewport
	Config   config.Game
}

// NewWorld creates a world around an existing map
func NewWorld(cfg config.Game, m *components.Map, r *rng.RNG) *World {
	return &World{
		Registry: components.NewRegistry(),
		Commands: components.NewCommandBuffer(),
		Map:      m,
		State:    AwaitingInput,
		RNG:      r,
		Events:   ecs.NewEventManager(),
		Log:      NewMessageLog(),
		Camera:   NewViewport(cfg.DisplayWidth, cfg.DisplayHeight),
		Config:   cfg,
	}
}

// EmitEvent publishes an event to every subscriber
func (w *World) EmitEvent(event ecs.Event) {
	w.Events.Emit(event)
}

// SetState changes the turn state and announces the change
func (w *World) SetState(s TurnState) {
	if s == w.State {
		return
	}
	from := w.State
	w.State = s
	w.EmitEvent(TurnStateEvent{From: from, To: s})
}

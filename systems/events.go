package systems

import (
	"dungeon-crawl/ecs"
	"dungeon-crawl/geom"
)

// Event type constants
const (
	EventMovement  ecs.EventType = "movement"
	EventCombat    ecs.EventType = "combat"
	EventDeath     ecs.EventType = "death"
	EventRest      ecs.EventType = "rest"
	EventTurnState ecs.EventType = "turn_state"
	EventReset     ecs.EventType = "reset"
)

// MoveEvent is emitted when an entity's move is accepted
type MoveEvent struct {
	Entity ecs.Entity
	From   geom.Point
	To     geom.Point
	Player bool
}

// Type returns the event type
func (e MoveEvent) Type() ecs.EventType {
	return EventMovement
}

// CombatEvent is emitted for every resolved attack
type CombatEvent struct {
	Attacker     ecs.Entity
	Victim       ecs.Entity
	AttackerName string
	VictimName   string
	Damage       int
	Remaining    int
	VictimPlayer bool
}

// Type returns the event type
func (e CombatEvent) Type() ecs.EventType {
	return EventCombat
}

// DeathEvent is emitted when a non-player entity is destroyed
type DeathEvent struct {
	Entity ecs.Entity
	Name   string
}

// Type returns the event type
func (e DeathEvent) Type() ecs.EventType {
	return EventDeath
}

// RestEvent is emitted when the player waits a turn
type RestEvent struct {
	Entity ecs.Entity
	Healed int
}

// Type returns the event type
func (e RestEvent) Type() ecs.EventType {
	return EventRest
}

// TurnStateEvent is emitted whenever the turn state changes
type TurnStateEvent struct {
	From TurnState
	To   TurnState
}

// Type returns the event type
func (e TurnStateEvent) Type() ecs.EventType {
	return EventTurnState
}

// ResetEvent is emitted after a new level has been built
type ResetEvent struct {
	Seed int64
}

// Type returns the event type
func (e ResetEvent) Type() ecs.EventType {
	return EventReset
}

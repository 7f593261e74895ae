package systems

import (
	"dungeon-crawl/components"
)

// PlayerInputSystem turns the pressed key into one message for the player
type PlayerInputSystem struct{}

// NewPlayerInputSystem creates a new player input system
func NewPlayerInputSystem() *PlayerInputSystem {
	return &PlayerInputSystem{}
}

// Name identifies the system in schedules
func (s *PlayerInputSystem) Name() string { return "player_input" }

// Update stages an attack on an enemy in the way or a move. With no
// direction the player rests for one hit point and the state stays put.
func (s *PlayerInputSystem) Update(w *World) error {
	player, err := w.Registry.Player()
	if err != nil {
		return err
	}
	pos, ok := w.Registry.PositionOf(player)
	if !ok {
		return nil
	}

	delta := w.Key.Delta()
	if delta.IsZero() {
		if health, ok := w.Registry.Healths.Get(player); ok {
			healed := health.Healed(1)
			w.Commands.Attach(player, healed)
			w.EmitEvent(RestEvent{Entity: player, Healed: healed.Current - health.Current})
		}
		return nil
	}

	destination := pos.Add(delta)
	if enemy, ok := w.Registry.EnemyAt(destination); ok {
		w.Commands.Spawn(components.WantsToAttack{Attacker: player, Victim: enemy})
	} else {
		w.Commands.Spawn(components.WantsToMove{Entity: player, Destination: destination})
	}

	w.SetState(PlayerTurn)
	return nil
}

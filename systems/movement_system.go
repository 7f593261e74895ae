package systems

import (
	"dungeon-crawl/components"
)

// MovementSystem resolves pending moves
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Name identifies the system in schedules
func (s *MovementSystem) Name() string { return "movement" }

// Update relocates each mover whose destination is enterable and marks its
// field of view dirty. Movers that no longer exist are skipped. Every message
// is removed regardless of outcome.
func (s *MovementSystem) Update(w *World) error {
	reg := w.Registry

	for _, msg := range reg.MoveRequests.Entities() {
		move, _ := reg.MoveRequests.Get(msg)
		w.Commands.Despawn(msg)

		if !reg.Alive(move.Entity) || !w.Map.CanEnterTile(move.Destination) {
			continue
		}
		from, ok := reg.PositionOf(move.Entity)
		if !ok {
			continue
		}

		w.Commands.Attach(move.Entity, components.At(move.Destination))
		if fov, ok := reg.FOVs.Get(move.Entity); ok {
			fov.Dirty = true
			w.Commands.Attach(move.Entity, fov)
		}

		w.EmitEvent(MoveEvent{
			Entity: move.Entity,
			From:   from,
			To:     move.Destination,
			Player: reg.Players.Has(move.Entity),
		})
	}
	return nil
}

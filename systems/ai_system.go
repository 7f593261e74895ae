package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
	"dungeon-crawl/geom"
)

// RandomMoveSystem makes wandering monsters step in a random direction
type RandomMoveSystem struct{}

// NewRandomMoveSystem creates a new random move system
func NewRandomMoveSystem() *RandomMoveSystem {
	return &RandomMoveSystem{}
}

// Name identifies the system in schedules
func (s *RandomMoveSystem) Name() string { return "random_move" }

// Update stages one message per wanderer
func (s *RandomMoveSystem) Update(w *World) error {
	for _, e := range w.Registry.Wanderers.Entities() {
		pos, ok := w.Registry.PositionOf(e)
		if !ok {
			continue
		}
		delta := geom.CardinalDeltas[w.RNG.Index(len(geom.CardinalDeltas))]
		stageStep(w, e, pos.Add(delta))
	}
	return nil
}

// stageStep queues a move to destination, or an attack when the player
// stands there. Any other living entity in the way cancels the step.
func stageStep(w *World, e ecs.Entity, destination geom.Point) {
	victim, occupied := w.Registry.LivingAt(destination)
	if !occupied {
		w.Commands.Spawn(components.WantsToMove{Entity: e, Destination: destination})
		return
	}
	if w.Registry.Players.Has(victim) {
		w.Commands.Spawn(components.WantsToAttack{Attacker: e, Victim: victim})
	}
}

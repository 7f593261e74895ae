package systems

import (
	"dungeon-crawl/geom"
	"dungeon-crawl/pathfinding"
)

// ChasingSystem walks chasing monsters one step down the flow field toward
// the player
type ChasingSystem struct{}

// NewChasingSystem creates a new chasing system
func NewChasingSystem() *ChasingSystem {
	return &ChasingSystem{}
}

// Name identifies the system in schedules
func (s *ChasingSystem) Name() string { return "chasing" }

// Update builds one flow field rooted at the player and stages a step for
// every chaser that has somewhere to go
func (s *ChasingSystem) Update(w *World) error {
	chasers := w.Registry.Chasers.Entities()
	if len(chasers) == 0 {
		return nil
	}

	player, err := w.Registry.Player()
	if err != nil {
		return err
	}
	playerPos, ok := w.Registry.PositionOf(player)
	if !ok {
		return nil
	}
	playerIdx, ok := w.Map.TryIndex(playerPos)
	if !ok {
		return nil
	}

	field := pathfinding.Build(w.Map, []int{playerIdx}, w.Config.PathfindingDepth)

	for _, e := range chasers {
		pos, ok := w.Registry.PositionOf(e)
		if !ok {
			continue
		}
		idx, ok := w.Map.TryIndex(pos)
		if !ok {
			continue
		}

		next, ok := pathfinding.FindLowestExit(field, w.Map, idx)
		if !ok {
			// No improving step: unreachable or already there
			continue
		}

		destination := w.Map.PointAt(next)
		if geom.Distance(pos, playerPos) <= w.Config.ChaseAdjacency {
			destination = playerPos
		}
		stageStep(w, e, destination)
	}
	return nil
}

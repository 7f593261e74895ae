package systems

// EndTurnSystem decides the next turn state after a resolution pass
type EndTurnSystem struct{}

// NewEndTurnSystem creates a new end turn system
func NewEndTurnSystem() *EndTurnSystem {
	return &EndTurnSystem{}
}

// Name identifies the system in schedules
func (s *EndTurnSystem) Name() string { return "end_turn" }

// Update moves to GameOver when the player is out of hit points, to Victory
// when the player stands on the amulet, and otherwise to the next state in
// the cycle. It does nothing while awaiting input.
func (s *EndTurnSystem) Update(w *World) error {
	if w.State == AwaitingInput || w.State.Terminal() {
		return nil
	}

	player, err := w.Registry.Player()
	if err != nil {
		return err
	}
	amulet, err := w.Registry.Amulet()
	if err != nil {
		return err
	}

	next := w.State.next()
	health, _ := w.Registry.Healths.Get(player)
	playerPos, _ := w.Registry.PositionOf(player)
	amuletPos, hasAmuletPos := w.Registry.PositionOf(amulet)

	switch {
	case health.Current < 1:
		next = GameOver
	case hasAmuletPos && playerPos == amuletPos:
		next = Victory
	}

	w.SetState(next)
	return nil
}

package systems

import "fmt"

// System is one step of a schedule
type System interface {
	Name() string
	Update(w *World) error
}

// Schedule runs systems in order. A flush step applies everything staged in
// the command buffer so later systems see it.
type Schedule struct {
	name  string
	steps []System
}

// flush is the marker step that applies the command buffer
type flush struct{}

func (flush) Name() string { return "flush" }

func (flush) Update(w *World) error {
	w.Commands.Flush(w.Registry)
	return nil
}

// NewSchedule creates an empty schedule
func NewSchedule(name string) *Schedule {
	return &Schedule{name: name}
}

// AddSystem appends a system step
func (s *Schedule) AddSystem(sys System) *Schedule {
	s.steps = append(s.steps, sys)
	return s
}

// Flush appends a flush step
func (s *Schedule) Flush() *Schedule {
	s.steps = append(s.steps, flush{})
	return s
}

// Name returns the schedule's name
func (s *Schedule) Name() string {
	return s.name
}

// Steps returns the step names in order
func (s *Schedule) Steps() []string {
	names := make([]string, len(s.steps))
	for i, step := range s.steps {
		names[i] = step.Name()
	}
	return names
}

// Run executes every step, then applies anything still staged
func (s *Schedule) Run(w *World) error {
	for _, step := range s.steps {
		if err := step.Update(w); err != nil {
			w.Commands.Clear()
			return fmt.Errorf("%s/%s: %w", s.name, step.Name(), err)
		}
	}
	w.Commands.Flush(w.Registry)
	return nil
}

// InputSchedule runs while waiting for the player
func InputSchedule() *Schedule {
	return NewSchedule("input").
		AddSystem(NewPlayerInputSystem()).
		Flush().
		AddSystem(NewFOVSystem()).
		Flush().
		AddSystem(NewCameraSystem())
}

// PlayerSchedule resolves the player's action
func PlayerSchedule() *Schedule {
	return NewSchedule("player").
		AddSystem(NewCombatSystem()).
		Flush().
		AddSystem(NewMovementSystem()).
		Flush().
		AddSystem(NewFOVSystem()).
		Flush().
		AddSystem(NewCameraSystem()).
		AddSystem(NewEndTurnSystem())
}

// MonsterSchedule lets every monster decide, then resolves their actions
func MonsterSchedule() *Schedule {
	return NewSchedule("monster").
		AddSystem(NewRandomMoveSystem()).
		AddSystem(NewChasingSystem()).
		Flush().
		AddSystem(NewCombatSystem()).
		Flush().
		AddSystem(NewMovementSystem()).
		Flush().
		AddSystem(NewFOVSystem()).
		Flush().
		AddSystem(NewCameraSystem()).
		AddSystem(NewEndTurnSystem())
}

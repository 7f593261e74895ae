package components

import "dungeon-crawl/ecs"

// CommandKind tags a staged mutation
type CommandKind int

const (
	CommandSpawn CommandKind = iota
	CommandDespawn
	CommandAttach
	CommandRemove
)

// Command is one staged mutation of the registry
type Command struct {
	Kind       CommandKind
	Entity     ecs.Entity
	Components []Component
}

// CommandBuffer collects mutations during a system step so every system in
// the step reads the same registry. Flush applies them in staging order, so
// the last staged write to an entity wins.
type CommandBuffer struct {
	commands []Command
}

// NewCommandBuffer creates an empty buffer
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

// Spawn stages the creation of an entity with the given components
func (cb *CommandBuffer) Spawn(comps ...Component) {
	cb.commands = append(cb.commands, Command{Kind: CommandSpawn, Components: comps})
}

// Despawn stages the removal of an entity
func (cb *CommandBuffer) Despawn(e ecs.Entity) {
	cb.commands = append(cb.commands, Command{Kind: CommandDespawn, Entity: e})
}

// Attach stages adding or replacing a component
func (cb *CommandBuffer) Attach(e ecs.Entity, c Component) {
	cb.commands = append(cb.commands, Command{Kind: CommandAttach, Entity: e, Components: []Component{c}})
}

// Remove stages detaching the component kind of c
func (cb *CommandBuffer) Remove(e ecs.Entity, c Component) {
	cb.commands = append(cb.commands, Command{Kind: CommandRemove, Entity: e, Components: []Component{c}})
}

// Len returns the number of staged commands
func (cb *CommandBuffer) Len() int {
	return len(cb.commands)
}

// Flush applies every staged command to reg and empties the buffer. Commands
// that target an entity no longer alive are skipped.
func (cb *CommandBuffer) Flush(reg *Registry) {
	for _, cmd := range cb.commands {
		switch cmd.Kind {
		case CommandSpawn:
			reg.Spawn(cmd.Components...)
		case CommandDespawn:
			reg.Despawn(cmd.Entity)
		case CommandAttach:
			for _, c := range cmd.Components {
				reg.Attach(cmd.Entity, c)
			}
		case CommandRemove:
			for _, c := range cmd.Components {
				reg.Detach(cmd.Entity, c)
			}
		}
	}
	cb.Clear()
}

// Clear drops every staged command without applying it
func (cb *CommandBuffer) Clear() {
	cb.commands = cb.commands[:0]
}

package components

import (
	"fmt"

	"dungeon-crawl/ecs"
	"dungeon-crawl/geom"
)

// Registry is the typed world: one dense store per component kind, all keyed
// by the same entity allocator.
type Registry struct {
	entities *ecs.Allocator

	Positions    *ecs.Store[Position]
	Healths      *ecs.Store[Health]
	Names        *ecs.Store[Name]
	Renders      *ecs.Store[Render]
	Players      *ecs.Store[Player]
	Enemies      *ecs.Store[Enemy]
	Items        *ecs.Store[Item]
	Amulets      *ecs.Store[AmuletOfYala]
	Wanderers    *ecs.Store[MovingRandomly]
	Chasers      *ecs.Store[ChasingPlayer]
	FOVs         *ecs.Store[FieldOfView]
	MoveRequests *ecs.Store[WantsToMove]
	Attacks      *ecs.Store[WantsToAttack]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entities:     ecs.NewAllocator(),
		Positions:    ecs.NewStore[Position](),
		Healths:      ecs.NewStore[Health](),
		Names:        ecs.NewStore[Name](),
		Renders:      ecs.NewStore[Render](),
		Players:      ecs.NewStore[Player](),
		Enemies:      ecs.NewStore[Enemy](),
		Items:        ecs.NewStore[Item](),
		Amulets:      ecs.NewStore[AmuletOfYala](),
		Wanderers:    ecs.NewStore[MovingRandomly](),
		Chasers:      ecs.NewStore[ChasingPlayer](),
		FOVs:         ecs.NewStore[FieldOfView](),
		MoveRequests: ecs.NewStore[WantsToMove](),
		Attacks:      ecs.NewStore[WantsToAttack](),
	}
}

// Spawn creates an entity carrying the given components
func (r *Registry) Spawn(comps ...Component) ecs.Entity {
	e := r.entities.Allocate()
	for _, c := range comps {
		c.attachTo(r, e)
	}
	return e
}

// Attach adds or replaces a component on a live entity
func (r *Registry) Attach(e ecs.Entity, c Component) bool {
	if !r.Alive(e) {
		return false
	}
	c.attachTo(r, e)
	return true
}

// Detach removes the component kind of c from e
func (r *Registry) Detach(e ecs.Entity, c Component) bool {
	if !r.Alive(e) {
		return false
	}
	return c.detachFrom(r, e)
}

// Despawn removes an entity and every component it carries
func (r *Registry) Despawn(e ecs.Entity) bool {
	if !r.entities.Free(e) {
		return false
	}
	r.Positions.Remove(e)
	r.Healths.Remove(e)
	r.Names.Remove(e)
	r.Renders.Remove(e)
	r.Players.Remove(e)
	r.Enemies.Remove(e)
	r.Items.Remove(e)
	r.Amulets.Remove(e)
	r.Wanderers.Remove(e)
	r.Chasers.Remove(e)
	r.FOVs.Remove(e)
	r.MoveRequests.Remove(e)
	r.Attacks.Remove(e)
	return true
}

// Alive reports whether e is a live entity
func (r *Registry) Alive(e ecs.Entity) bool {
	return r.entities.Alive(e)
}

// Len returns the number of live entities
func (r *Registry) Len() int {
	return r.entities.Len()
}

// Clear despawns every entity
func (r *Registry) Clear() {
	r.entities.Each(func(e ecs.Entity) { r.Despawn(e) })
}

// Player returns the single player entity
func (r *Registry) Player() (ecs.Entity, error) {
	players := r.Players.Entities()
	if len(players) == 0 {
		return ecs.NilEntity, fmt.Errorf("player: %w", ErrMissingEntity)
	}
	return players[0], nil
}

// Amulet returns the single amulet entity
func (r *Registry) Amulet() (ecs.Entity, error) {
	amulets := r.Amulets.Entities()
	if len(amulets) == 0 {
		return ecs.NilEntity, fmt.Errorf("amulet: %w", ErrMissingEntity)
	}
	return amulets[0], nil
}

// PositionOf returns where e stands
func (r *Registry) PositionOf(e ecs.Entity) (geom.Point, bool) {
	pos, ok := r.Positions.Get(e)
	return pos.Point, ok
}

// LivingAt returns the first entity with health standing on p
func (r *Registry) LivingAt(p geom.Point) (ecs.Entity, bool) {
	for _, e := range r.Positions.Entities() {
		pos, _ := r.Positions.Get(e)
		if pos.Point == p && r.Healths.Has(e) {
			return e, true
		}
	}
	return ecs.NilEntity, false
}

// EnemyAt returns the first living enemy standing on p
func (r *Registry) EnemyAt(p geom.Point) (ecs.Entity, bool) {
	for _, e := range r.Enemies.Entities() {
		pos, ok := r.Positions.Get(e)
		if ok && pos.Point == p && r.Healths.Has(e) {
			return e, true
		}
	}
	return ecs.NilEntity, false
}

// Renderable is one drawable entity
type Renderable struct {
	Entity   ecs.Entity
	Position geom.Point
	Render   Render
}

// Renderables returns every entity with both a position and a render
// component, in store order
func (r *Registry) Renderables() []Renderable {
	out := make([]Renderable, 0, r.Renders.Len())
	r.Renders.Each(func(e ecs.Entity, rc *Render) {
		if pos, ok := r.Positions.Get(e); ok {
			out = append(out, Renderable{Entity: e, Position: pos.Point, Render: *rc})
		}
	})
	return out
}

// NameOf returns e's display name or a placeholder
func (r *Registry) NameOf(e ecs.Entity) string {
	if n, ok := r.Names.Get(e); ok {
		return n.String()
	}
	return "something"
}

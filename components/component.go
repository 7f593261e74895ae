package components

import "dungeon-crawl/ecs"

// Component is any value the registry knows how to store. The set is closed:
// only the types in this package implement it.
type Component interface {
	attachTo(r *Registry, e ecs.Entity)
	detachFrom(r *Registry, e ecs.Entity) bool
}

func (c Position) attachTo(r *Registry, e ecs.Entity) {
	r.Positions.Set(e, c)
}

func (Position) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.Positions.Remove(e)
}

func (c Health) attachTo(r *Registry, e ecs.Entity) {
	r.Healths.Set(e, c)
}

func (Health) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.Healths.Remove(e)
}

func (c Name) attachTo(r *Registry, e ecs.Entity) {
	r.Names.Set(e, c)
}

func (Name) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.Names.Remove(e)
}

func (c Render) attachTo(r *Registry, e ecs.Entity) {
	r.Renders.Set(e, c)
}

func (Render) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.Renders.Remove(e)
}

func (c Player) attachTo(r *Registry, e ecs.Entity) {
	r.Players.Set(e, c)
}

func (Player) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.Players.Remove(e)
}

func (c Enemy) attachTo(r *Registry, e ecs.Entity) {
	r.Enemies.Set(e, c)
}

func (Enemy) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.Enemies.Remove(e)
}

func (c Item) attachTo(r *Registry, e ecs.Entity) {
	r.Items.Set(e, c)
}

func (Item) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.Items.Remove(e)
}

func (c AmuletOfYala) attachTo(r *Registry, e ecs.Entity) {
	r.Amulets.Set(e, c)
}

func (AmuletOfYala) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.Amulets.Remove(e)
}

func (c MovingRandomly) attachTo(r *Registry, e ecs.Entity) {
	r.Wanderers.Set(e, c)
}

func (MovingRandomly) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.Wanderers.Remove(e)
}

func (c ChasingPlayer) attachTo(r *Registry, e ecs.Entity) {
	r.Chasers.Set(e, c)
}

func (ChasingPlayer) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.Chasers.Remove(e)
}

func (c FieldOfView) attachTo(r *Registry, e ecs.Entity) {
	r.FOVs.Set(e, c)
}

func (FieldOfView) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.FOVs.Remove(e)
}

func (c WantsToMove) attachTo(r *Registry, e ecs.Entity) {
	r.MoveRequests.Set(e, c)
}

func (WantsToMove) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.MoveRequests.Remove(e)
}

func (c WantsToAttack) attachTo(r *Registry, e ecs.Entity) {
	r.Attacks.Set(e, c)
}

func (WantsToAttack) detachFrom(r *Registry, e ecs.Entity) bool {
	return r.Attacks.Remove(e)
}

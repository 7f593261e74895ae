package ecs

import "fmt"

// Entity is a stable handle to a game object. The generation changes every
// time an index is recycled, so a handle kept past its entity's removal never
// resolves to the entity that later reuses the slot.
type Entity struct {
	Index      uint32
	Generation uint32
}

// NilEntity is the zero handle; no live entity ever has generation 0.
var NilEntity = Entity{}

func (e Entity) String() string {
	return fmt.Sprintf("#%d.%d", e.Index, e.Generation)
}

// IsNil reports whether e is the zero handle
func (e Entity) IsNil() bool {
	return e.Generation == 0
}

// Allocator hands out entity handles and recycles freed indices
type Allocator struct {
	generations []uint32
	alive       []bool
	free        []uint32
	count       int
}

// NewAllocator creates an empty allocator
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Allocate returns a fresh handle, reusing the oldest freed index if any
func (a *Allocator) Allocate() Entity {
	var idx uint32
	if len(a.free) > 0 {
		idx = a.free[0]
		a.free = a.free[1:]
	} else {
		idx = uint32(len(a.generations))
		a.generations = append(a.generations, 0)
		a.alive = append(a.alive, false)
	}

	a.generations[idx]++
	a.alive[idx] = true
	a.count++
	return Entity{Index: idx, Generation: a.generations[idx]}
}

// Free releases the handle's index. Freeing a stale or nil handle is a no-op
// and returns false.
func (a *Allocator) Free(e Entity) bool {
	if !a.Alive(e) {
		return false
	}
	a.alive[e.Index] = false
	a.free = append(a.free, e.Index)
	a.count--
	return true
}

// Alive reports whether the handle refers to a live entity
func (a *Allocator) Alive(e Entity) bool {
	if e.IsNil() || int(e.Index) >= len(a.generations) {
		return false
	}
	return a.alive[e.Index] && a.generations[e.Index] == e.Generation
}

// Len returns the number of live entities
func (a *Allocator) Len() int {
	return a.count
}

// Each calls fn for every live entity in index order
func (a *Allocator) Each(fn func(Entity)) {
	for i, ok := range a.alive {
		if ok {
			fn(Entity{Index: uint32(i), Generation: a.generations[i]})
		}
	}
}

package ecs

const noSlot = -1

// Store holds one component type for many entities in a dense array. The
// sparse side maps entity index to dense slot; the owner list keeps the full
// handle so stale handles never read another entity's data.
type Store[T any] struct {
	sparse []int
	dense  []T
	owners []Entity
}

// NewStore creates an empty component store
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

func (s *Store[T]) slot(e Entity) int {
	if int(e.Index) >= len(s.sparse) {
		return noSlot
	}
	i := s.sparse[e.Index]
	if i == noSlot || s.owners[i] != e {
		return noSlot
	}
	return i
}

// Set attaches or replaces the component for e
func (s *Store[T]) Set(e Entity, v T) {
	for int(e.Index) >= len(s.sparse) {
		s.sparse = append(s.sparse, noSlot)
	}

	// A slot still owned by an older generation is replaced outright.
	if i := s.sparse[e.Index]; i != noSlot {
		s.dense[i] = v
		s.owners[i] = e
		return
	}

	s.sparse[e.Index] = len(s.dense)
	s.dense = append(s.dense, v)
	s.owners = append(s.owners, e)
}

// Get returns a copy of e's component
func (s *Store[T]) Get(e Entity) (T, bool) {
	if i := s.slot(e); i != noSlot {
		return s.dense[i], true
	}
	var zero T
	return zero, false
}

// GetPtr returns a pointer into the dense array; it is invalidated by the
// next Set or Remove on this store.
func (s *Store[T]) GetPtr(e Entity) *T {
	if i := s.slot(e); i != noSlot {
		return &s.dense[i]
	}
	return nil
}

// Has reports whether e carries this component
func (s *Store[T]) Has(e Entity) bool {
	return s.slot(e) != noSlot
}

// Remove detaches the component from e by swapping the last slot into its place
func (s *Store[T]) Remove(e Entity) bool {
	i := s.slot(e)
	if i == noSlot {
		return false
	}

	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.owners[i] = s.owners[last]
		s.sparse[s.owners[i].Index] = i
	}

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.owners = s.owners[:last]
	s.sparse[e.Index] = noSlot
	return true
}

// Len returns the number of entities carrying this component
func (s *Store[T]) Len() int {
	return len(s.dense)
}

// Entities returns a snapshot of the owning entities in dense order
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.owners))
	copy(out, s.owners)
	return out
}

// Each calls fn for every (entity, component) pair in dense order. fn must
// not add or remove components of this store.
func (s *Store[T]) Each(fn func(e Entity, v *T)) {
	for i := range s.dense {
		fn(s.owners[i], &s.dense[i])
	}
}

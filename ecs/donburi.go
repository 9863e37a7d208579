package ecs

import (
	"github.com/phanxgames/lattice"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// Box marks a Donburi entity as a layout node and carries its lattice handle.
// A zero Handle means the entity has not been attached yet: the Registrar
// never mints generation-zero handles, so the component's zero value is
// unambiguous.
type Box struct {
	Handle lattice.Entity
}

// BoxType is the Donburi component type for Box. Create layout entities with
// it: world.Create(ecs.BoxType).
var BoxType = donburi.NewComponentType[Box]()

// Handle returns the lattice handle stored in the entry's Box component, or
// lattice.EntityNil when the entry was never attached.
func Handle(entry *donburi.Entry) lattice.Entity {
	return BoxType.Get(entry).Handle
}

// Registrar owns the lattice handles for one Donburi world: it allocates
// arena indices, bumps generations on recycle, and keeps the cache's rows in
// step with the entities that carry a Box component.
//
// Like the cache itself, a Registrar is not safe for concurrent use.
type Registrar struct {
	cache *lattice.NodeCache
	next  uint32
	free  []lattice.Entity
}

// NewRegistrar creates a Registrar that registers rows into cache.
func NewRegistrar(cache *lattice.NodeCache) *Registrar {
	return &Registrar{cache: cache}
}

// Cache returns the store this Registrar feeds.
func (r *Registrar) Cache() *lattice.NodeCache {
	return r.cache
}

// Attach mints a handle for the entry, registers its cache row, and stores
// the handle in the entry's Box component. Attaching an entry that already
// has a handle just re-registers its row (resetting it to defaults), matching
// the cache's own re-registration semantics.
func (r *Registrar) Attach(entry *donburi.Entry) lattice.Entity {
	box := BoxType.Get(entry)
	if box.Handle == lattice.EntityNil {
		box.Handle = r.alloc()
	}
	r.cache.Register(box.Handle)
	return box.Handle
}

// Detach removes the entry's cache row, recycles its handle, and clears the
// Box component. No-op for an entry that was never attached.
func (r *Registrar) Detach(entry *donburi.Entry) {
	box := BoxType.Get(entry)
	if box.Handle == lattice.EntityNil {
		return
	}
	r.cache.Remove(box.Handle)
	r.free = append(r.free, box.Handle)
	box.Handle = lattice.EntityNil
}

// Sync attaches every Box-tagged entity in the world that has no handle yet.
// Useful after bulk spawns where calling Attach per entity is inconvenient.
// It returns the number of entities attached.
func (r *Registrar) Sync(w donburi.World) int {
	attached := 0
	query.NewQuery(filter.Contains(BoxType)).Each(w, func(entry *donburi.Entry) {
		if BoxType.Get(entry).Handle == lattice.EntityNil {
			r.Attach(entry)
			attached++
		}
	})
	return attached
}

// alloc returns a recycled handle with its generation bumped, or a fresh one.
// Fresh handles start at generation 1 so the zero Entity stays reserved as
// Box's "not attached" state.
func (r *Registrar) alloc() lattice.Entity {
	if n := len(r.free); n > 0 {
		old := r.free[n-1]
		r.free = r.free[:n-1]
		return lattice.NewEntity(old.Index(), old.Generation()+1)
	}
	index := r.next
	r.next++
	return lattice.NewEntity(index, 1)
}

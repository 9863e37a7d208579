package lattice

import "fmt"

// Entity is an opaque handle identifying one layout node. Handles are minted
// and recycled by the caller's node tree or ECS, never by the cache.
//
// A handle packs a dense 32-bit index with a 32-bit generation. The cache
// stores rows in an arena indexed by Index; the generation recorded at
// registration must match on every access, so a stale handle left over from
// a recycled slot misses cleanly instead of aliasing the new occupant.
type Entity uint64

// EntityNil is the zero Entity. It is a valid handle like any other; it is
// exported only as a convenient "no node" sentinel for callers.
const EntityNil Entity = 0

// NewEntity builds a handle from an arena index and a generation counter.
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the handle's arena slot.
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the handle's recycle counter.
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// String formats the handle as index.generation for diagnostics.
func (e Entity) String() string {
	return fmt.Sprintf("%d.%d", e.Index(), e.Generation())
}

// Package lattice is the state store a box-layout engine reads and writes
// while computing geometry for a tree of UI nodes.
//
// Lattice does not solve layout itself. It holds, per entity, the finalized
// output rectangle, the intermediate quantities a bottom-up/top-down solver
// needs between visits (child size aggregates, free-space and stretch
// accumulators, grid maxima, stacking-order flags), and a per-node record of
// which geometric properties changed since the last pass.
//
// # Quick start
//
// Register an entity before any pass touches it, then read and write through
// the accessors:
//
//	cache := lattice.NewNodeCache()
//	cache.Register(e)
//	cache.SetWidth(e, 120)
//	cache.SetGeometryChanged(e, lattice.WidthChanged, true)
//
// A layout solver should depend on the [Cache] interface rather than on
// [NodeCache] directly, so the store and the solving algorithm stay
// independently testable.
//
// # Tolerant and strict accessors
//
// Rect, Space, Size, Visible, and GeometryChanged accessors are tolerant:
// reading an unregistered entity returns a documented default (zero geometry,
// visible, nothing changed) and writing one is a silent no-op. The solver
// scratch fields (accumulators and stack flags) are strict: touching them for
// an unregistered entity panics, because the solver's own traversal order
// guarantees registration and a miss there is a caller bug, not a runtime
// condition. See [Cache] for the full contract.
//
// # Lifecycle
//
// The cache never creates or destroys entities; the caller's node tree owns
// them. Call [NodeCache.Register] when a node enters the tree (re-registering
// resets the row to defaults) and [NodeCache.Remove] when it leaves. Nothing
// is evicted automatically.
//
// # Concurrency
//
// A NodeCache has no internal locking. One layout pass owns it at a time;
// serialize whole passes externally if needed.
//
// Animation of cached rectangles is available via [TweenRect] (using
// [gween]), a visual debug overlay for [Ebitengine] via [Overlay], and ECS
// integration via the [Donburi] adapter in lattice/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package lattice

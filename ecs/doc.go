// Package ecs provides ECS adapters for lattice's entity-keyed layout store.
//
// The primary adapter is [Registrar], which bridges [Donburi] entities to
// lattice cache rows: it mints generation-checked lattice handles, registers
// and removes rows as entities enter and leave the world, and stores each
// entity's handle in its [Box] component so systems can reach its geometry.
//
// Usage:
//
//	cache := lattice.NewNodeCache()
//	reg := ecs.NewRegistrar(cache)
//
//	entity := world.Create(ecs.BoxType)
//	handle := reg.Attach(world.Entry(entity))
//	cache.SetRequestedWidth(handle, 120)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

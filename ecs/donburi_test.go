package ecs

import (
	"testing"

	"github.com/phanxgames/lattice"

	"github.com/yohamta/donburi"
)

func TestAttachRegistersRow(t *testing.T) {
	world := donburi.NewWorld()
	cache := lattice.NewNodeCache()
	reg := NewRegistrar(cache)

	entry := world.Entry(world.Create(BoxType))
	handle := reg.Attach(entry)

	if handle == lattice.EntityNil {
		t.Fatal("Attach returned the nil handle")
	}
	if !cache.Registered(handle) {
		t.Error("row not registered after Attach")
	}
	if BoxType.Get(entry).Handle != handle {
		t.Error("handle not stored in the Box component")
	}
	if !cache.Visible(handle) {
		t.Error("fresh row should default visible")
	}
}

func TestAttachTwiceResetsRow(t *testing.T) {
	world := donburi.NewWorld()
	cache := lattice.NewNodeCache()
	reg := NewRegistrar(cache)

	entry := world.Entry(world.Create(BoxType))
	handle := reg.Attach(entry)
	cache.SetWidth(handle, 64)

	again := reg.Attach(entry)

	if again != handle {
		t.Errorf("re-Attach minted a new handle: %v, want %v", again, handle)
	}
	if got := cache.Width(handle); got != 0 {
		t.Errorf("Width = %v after re-Attach, want reset to 0", got)
	}
}

func TestDetachRemovesRowAndRecyclesHandle(t *testing.T) {
	world := donburi.NewWorld()
	cache := lattice.NewNodeCache()
	reg := NewRegistrar(cache)

	entry := world.Entry(world.Create(BoxType))
	handle := reg.Attach(entry)
	reg.Detach(entry)

	if cache.Registered(handle) {
		t.Error("row still registered after Detach")
	}
	if BoxType.Get(entry).Handle != lattice.EntityNil {
		t.Error("Box component not cleared by Detach")
	}

	// The slot comes back with a bumped generation, so the old handle
	// stays stale.
	other := world.Entry(world.Create(BoxType))
	recycled := reg.Attach(other)
	if recycled.Index() != handle.Index() {
		t.Errorf("expected slot %d to be recycled, got %d", handle.Index(), recycled.Index())
	}
	if recycled.Generation() != handle.Generation()+1 {
		t.Errorf("Generation = %d, want %d", recycled.Generation(), handle.Generation()+1)
	}
	if cache.Registered(handle) {
		t.Error("stale handle reads as registered after recycle")
	}
}

func TestDetachUnattachedIsNoop(t *testing.T) {
	world := donburi.NewWorld()
	reg := NewRegistrar(lattice.NewNodeCache())

	entry := world.Entry(world.Create(BoxType))
	reg.Detach(entry) // must not panic or recycle anything

	handle := reg.Attach(entry)
	if handle.Generation() != 1 {
		t.Errorf("Generation = %d, want 1 for a fresh handle", handle.Generation())
	}
}

func TestSyncAttachesUnattachedEntities(t *testing.T) {
	world := donburi.NewWorld()
	cache := lattice.NewNodeCache()
	reg := NewRegistrar(cache)

	entries := make([]*donburi.Entry, 3)
	for i := range entries {
		entries[i] = world.Entry(world.Create(BoxType))
	}
	reg.Attach(entries[0])

	attached := reg.Sync(world)

	if attached != 2 {
		t.Errorf("Sync attached %d entities, want 2", attached)
	}
	for i, entry := range entries {
		handle := BoxType.Get(entry).Handle
		if handle == lattice.EntityNil {
			t.Errorf("entry %d has no handle after Sync", i)
			continue
		}
		if !cache.Registered(handle) {
			t.Errorf("entry %d not registered after Sync", i)
		}
	}
	if cache.Len() != 3 {
		t.Errorf("cache rows = %d, want 3", cache.Len())
	}

	// A second Sync finds nothing to do.
	if again := reg.Sync(world); again != 0 {
		t.Errorf("second Sync attached %d entities, want 0", again)
	}
}

func TestHandlesAreDistinctAcrossEntities(t *testing.T) {
	world := donburi.NewWorld()
	cache := lattice.NewNodeCache()
	reg := NewRegistrar(cache)

	a := reg.Attach(world.Entry(world.Create(BoxType)))
	b := reg.Attach(world.Entry(world.Create(BoxType)))

	if a == b {
		t.Fatal("two entities share one handle")
	}
	cache.SetPosX(a, 11)
	if cache.PosX(b) != 0 {
		t.Error("writes through one handle leaked into the other")
	}
}

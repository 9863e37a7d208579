package lattice

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{PosX: 10, PosY: 20, Width: 100, Height: 50}

	if !r.Contains(50, 40) {
		t.Error("interior point not contained")
	}
	if !r.Contains(10, 20) || !r.Contains(110, 70) {
		t.Error("edge points should be contained")
	}
	if r.Contains(9.9, 40) {
		t.Error("point left of rect contained")
	}
	if r.Contains(50, 70.1) {
		t.Error("point below rect contained")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{PosX: 0, PosY: 0, Width: 10, Height: 10}

	if !a.Intersects(Rect{PosX: 5, PosY: 5, Width: 10, Height: 10}) {
		t.Error("overlapping rects should intersect")
	}
	// Sharing only an edge still counts.
	if !a.Intersects(Rect{PosX: 10, PosY: 0, Width: 10, Height: 10}) {
		t.Error("edge-adjacent rects should intersect")
	}
	if a.Intersects(Rect{PosX: 10.5, PosY: 0, Width: 10, Height: 10}) {
		t.Error("separated rects should not intersect")
	}
}

func TestZeroRectContainsOnlyOrigin(t *testing.T) {
	var r Rect
	if !r.Contains(0, 0) {
		t.Error("zero rect should contain its own origin")
	}
	if r.Contains(0.1, 0) {
		t.Error("zero rect should contain nothing else")
	}
}

package lattice

import "testing"

func TestOutlineStripsCoverEdges(t *testing.T) {
	r := Rect{PosX: 10, PosY: 20, Width: 100, Height: 60}
	strips := outlineStrips(r, 2)

	top, bottom, left, right := strips[0], strips[1], strips[2], strips[3]

	if top != (Rect{PosX: 10, PosY: 20, Width: 100, Height: 2}) {
		t.Errorf("top strip = %+v", top)
	}
	if bottom != (Rect{PosX: 10, PosY: 78, Width: 100, Height: 2}) {
		t.Errorf("bottom strip = %+v", bottom)
	}
	if left != (Rect{PosX: 10, PosY: 22, Width: 2, Height: 56}) {
		t.Errorf("left strip = %+v", left)
	}
	if right != (Rect{PosX: 108, PosY: 22, Width: 2, Height: 56}) {
		t.Errorf("right strip = %+v", right)
	}

	// Side strips start where the top strip ends, so corners paint once.
	if left.PosY != top.PosY+top.Height {
		t.Error("left strip overlaps top strip")
	}
}

func TestOutlineStripsStayInsideRect(t *testing.T) {
	r := Rect{PosX: 5, PosY: 5, Width: 40, Height: 30}
	for i, strip := range outlineStrips(r, 1) {
		if strip.PosX < r.PosX || strip.PosY < r.PosY ||
			strip.PosX+strip.Width > r.PosX+r.Width ||
			strip.PosY+strip.Height > r.PosY+r.Height {
			t.Errorf("strip %d escapes the rect: %+v", i, strip)
		}
	}
}

func TestOverlayOrdersByLayer(t *testing.T) {
	c := NewNodeCache()
	back := NewEntity(0, 0)
	mid := NewEntity(1, 0)
	front := NewEntity(2, 0)
	hidden := NewEntity(3, 0)
	for _, e := range []Entity{back, mid, front, hidden} {
		c.Register(e)
	}
	c.SetLayer(front, 10)
	c.SetLayer(mid, 5)
	c.SetVisible(hidden, false)

	o := NewOverlay()
	got := o.visibleByLayer(c)

	want := []Entity{back, mid, front}
	if len(got) != len(want) {
		t.Fatalf("visibleByLayer returned %d entities, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOverlayKeepsArenaOrderWithinLayer(t *testing.T) {
	c := NewNodeCache()
	entities := []Entity{NewEntity(0, 0), NewEntity(1, 0), NewEntity(2, 0)}
	for _, e := range entities {
		c.Register(e)
		c.SetLayer(e, 4)
	}

	o := NewOverlay()
	got := o.visibleByLayer(c)
	for i, e := range entities {
		if got[i] != e {
			t.Errorf("order[%d] = %v, want %v (stable within layer)", i, got[i], e)
		}
	}
}

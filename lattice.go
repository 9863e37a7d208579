package lattice

// Rect is a node's finalized position and size after layout. The coordinate
// system has its origin at the top-left, with Y increasing downward.
//
// Rect is the authoritative, externally visible output of a layout pass;
// everything else the cache holds exists to produce it.
type Rect struct {
	PosX, PosY    float32
	Width, Height float32
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.PosX && x <= r.PosX+r.Width &&
		y >= r.PosY && y <= r.PosY+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.PosX <= other.PosX+other.Width &&
		r.PosX+r.Width >= other.PosX &&
		r.PosY <= other.PosY+other.Height &&
		r.PosY+r.Height >= other.PosY
}

// Space holds the resolved inset distance on each of a node's four sides.
// The solver writes these as intermediates while resolving margins.
type Space struct {
	Left, Right, Top, Bottom float32
}

// Size is a node's requested width and height before resolution, distinct
// from the final size recorded in its Rect.
type Size struct {
	Width, Height float32
}

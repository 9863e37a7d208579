package lattice

import "strings"

// GeometryChanged records which of a node's output geometry fields changed
// since the bits were last cleared. Downstream consumers (repaint schedulers,
// animation systems) use it to invalidate selectively instead of reacting to
// every node each pass.
//
// The zero value means nothing changed. Bits are independent: setting or
// clearing one never affects another, and no ordering is implied between
// mutations.
type GeometryChanged uint8

const (
	// PosXChanged is set when a node's horizontal position moved.
	PosXChanged GeometryChanged = 1 << iota
	// PosYChanged is set when a node's vertical position moved.
	PosYChanged
	// WidthChanged is set when a node's resolved width changed.
	WidthChanged
	// HeightChanged is set when a node's resolved height changed.
	HeightChanged
)

// Set sets or clears the given flag bits, leaving all others untouched.
func (g *GeometryChanged) Set(flag GeometryChanged, value bool) {
	if value {
		*g |= flag
	} else {
		*g &^= flag
	}
}

// Has reports whether all bits in flag are set.
func (g GeometryChanged) Has(flag GeometryChanged) bool {
	return g&flag == flag
}

// Any reports whether any bit is set.
func (g GeometryChanged) Any() bool {
	return g != 0
}

// String lists the set bits, e.g. "posx|width", or "none".
func (g GeometryChanged) String() string {
	if g == 0 {
		return "none"
	}
	var parts []string
	if g.Has(PosXChanged) {
		parts = append(parts, "posx")
	}
	if g.Has(PosYChanged) {
		parts = append(parts, "posy")
	}
	if g.Has(WidthChanged) {
		parts = append(parts, "width")
	}
	if g.Has(HeightChanged) {
		parts = append(parts, "height")
	}
	return strings.Join(parts, "|")
}

package lattice

// Cache is the capability surface a layout solver is written against. It is
// the complete read/write contract for one node's layout state; [NodeCache]
// is the canonical implementation, and solvers that depend on this interface
// instead can be tested against a fake store.
//
// Accessors come in two families with different behavior for an entity that
// was never registered (or whose handle generation is stale):
//
// Tolerant — the public geometry fields external code may query defensively
// before a node is fully initialized. Reads return a default, writes are
// silent no-ops:
//
//   - Rect fields: PosX, PosY, Width, Height (default 0)
//   - Space fields: Left, Right, Top, Bottom (default 0)
//   - Size fields: RequestedWidth, RequestedHeight (default 0)
//   - Visible reads (default true)
//   - GeometryChanged reads (default: nothing changed) and SetGeometryChanged
//
// Strict — the solver's scratch fields, only ever touched inside a traversal
// where registration is a precondition the caller's own tree-walk order
// enforces. Reading or writing one for an unregistered entity panics:
//
//   - the ten accumulators (child width/height max and sum, grid row/col max,
//     horizontal/vertical free space and stretch sum)
//   - StackFirstChild and StackLastChild
//   - SetVisible
//
// Do not collapse the two families: solvers and downstream consumers rely on
// both behaviors.
type Cache interface {
	// Registered reports whether the entity currently has a live row.
	Registered(entity Entity) bool

	// Visible reports whether the node takes part in layout and rendering.
	Visible(entity Entity) bool
	SetVisible(entity Entity, value bool)

	// GeometryChanged returns the node's change bits as last written.
	GeometryChanged(entity Entity) GeometryChanged
	// SetGeometryChanged sets or clears one flag, leaving the others alone.
	SetGeometryChanged(entity Entity, flag GeometryChanged, value bool)

	// Final rectangle (output of layout).
	PosX(entity Entity) float32
	PosY(entity Entity) float32
	Width(entity Entity) float32
	Height(entity Entity) float32
	SetPosX(entity Entity, value float32)
	SetPosY(entity Entity, value float32)
	SetWidth(entity Entity, value float32)
	SetHeight(entity Entity, value float32)

	// Resolved insets (layout intermediates).
	Left(entity Entity) float32
	Right(entity Entity) float32
	Top(entity Entity) float32
	Bottom(entity Entity) float32
	SetLeft(entity Entity, value float32)
	SetRight(entity Entity, value float32)
	SetTop(entity Entity, value float32)
	SetBottom(entity Entity, value float32)

	// Requested size, prior to resolution against constraints.
	RequestedWidth(entity Entity) float32
	RequestedHeight(entity Entity) float32
	SetRequestedWidth(entity Entity, value float32)
	SetRequestedHeight(entity Entity, value float32)

	// Child aggregates computed on the way up the tree.
	ChildWidthMax(entity Entity) float32
	ChildWidthSum(entity Entity) float32
	ChildHeightMax(entity Entity) float32
	ChildHeightSum(entity Entity) float32
	SetChildWidthMax(entity Entity, value float32)
	SetChildWidthSum(entity Entity, value float32)
	SetChildHeightMax(entity Entity, value float32)
	SetChildHeightSum(entity Entity, value float32)

	// Grid extents.
	GridRowMax(entity Entity) float32
	GridColMax(entity Entity) float32
	SetGridRowMax(entity Entity, value float32)
	SetGridColMax(entity Entity, value float32)

	// Free space and stretch-factor accumulators, per axis.
	HorizontalFreeSpace(entity Entity) float32
	HorizontalStretchSum(entity Entity) float32
	VerticalFreeSpace(entity Entity) float32
	VerticalStretchSum(entity Entity) float32
	SetHorizontalFreeSpace(entity Entity, value float32)
	SetHorizontalStretchSum(entity Entity, value float32)
	SetVerticalFreeSpace(entity Entity, value float32)
	SetVerticalStretchSum(entity Entity, value float32)

	// Position-in-stack markers.
	StackFirstChild(entity Entity) bool
	StackLastChild(entity Entity) bool
	SetStackFirstChild(entity Entity, value bool)
	SetStackLastChild(entity Entity, value bool)

	// Layer returns the node's painting layer and whether one was ever set.
	// Layers are assigned explicitly by the caller; Register does not default
	// one.
	Layer(entity Entity) (uint32, bool)
	SetLayer(entity Entity, value uint32)
}

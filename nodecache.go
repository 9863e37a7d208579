package lattice

import "fmt"

// nodeRow is one entity's complete layout state. A single flat struct is used
// for the whole row to keep every accessor a constant-time arena lookup.
type nodeRow struct {
	generation uint32
	live       bool

	// Computed output.
	rect Rect

	// Intermediate values.
	space Space
	size  Size

	childWidthMax  float32
	childHeightMax float32
	childWidthSum  float32
	childHeightSum float32

	gridRowMax float32
	gridColMax float32

	horizontalFreeSpace  float32
	horizontalStretchSum float32

	verticalFreeSpace  float32
	verticalStretchSum float32

	stackFirstChild bool
	stackLastChild  bool

	geometryChanged GeometryChanged

	visible bool
}

// NodeCache is the canonical [Cache]: a dense arena of per-entity layout rows
// indexed by [Entity.Index] and guarded by [Entity.Generation].
//
// NodeCache has no internal locking; exactly one layout pass may own it at a
// time, and partially written rows must not escape a pass boundary.
type NodeCache struct {
	rows []nodeRow

	// layer is kept apart from the rows: a layer is absent until the caller
	// assigns one, and Register never defaults it.
	layer map[Entity]uint32
}

// NewNodeCache creates an empty cache.
func NewNodeCache() *NodeCache {
	return &NodeCache{
		layer: make(map[Entity]uint32),
	}
}

// Register creates the entity's row with every field at its default: zero
// Rect, Space, and Size, all accumulators 0, both stack flags false, change
// bits clear, and visible true.
//
// Registering an already-registered entity resets the row to the same
// defaults, discarding prior state, so a tree rebuild can re-register nodes
// without leaking stale intermediates. The layer table is not touched.
func (c *NodeCache) Register(entity Entity) {
	idx := int(entity.Index())
	if idx >= len(c.rows) {
		grown := make([]nodeRow, idx+1)
		copy(grown, c.rows)
		c.rows = grown
	}
	c.rows[idx] = nodeRow{
		generation: entity.Generation(),
		live:       true,
		visible:    true,
	}
}

// Remove frees the entity's row and its layer assignment. The caller must
// remove each node's row when the node leaves the tree; nothing is evicted
// automatically. Removing an entity that has no row is a no-op.
func (c *NodeCache) Remove(entity Entity) {
	if row := c.row(entity); row != nil {
		*row = nodeRow{}
	}
	delete(c.layer, entity)
}

// Registered reports whether the entity currently has a live row.
func (c *NodeCache) Registered(entity Entity) bool {
	return c.row(entity) != nil
}

// Len returns the number of live rows.
func (c *NodeCache) Len() int {
	n := 0
	for i := range c.rows {
		if c.rows[i].live {
			n++
		}
	}
	return n
}

// Each calls fn for every registered entity, in arena order. fn must not
// register or remove entities during the walk.
func (c *NodeCache) Each(fn func(Entity)) {
	for i := range c.rows {
		if c.rows[i].live {
			fn(NewEntity(uint32(i), c.rows[i].generation))
		}
	}
}

// row returns the entity's live row, or nil when the entity was never
// registered, was removed, or carries a stale generation.
func (c *NodeCache) row(entity Entity) *nodeRow {
	idx := int(entity.Index())
	if idx >= len(c.rows) {
		return nil
	}
	row := &c.rows[idx]
	if !row.live || row.generation != entity.Generation() {
		return nil
	}
	return row
}

// mustRow is row for the strict accessor family: a miss is a caller bug
// (the solver's traversal order guarantees registration before use), so it
// panics instead of defaulting.
func (c *NodeCache) mustRow(entity Entity, op string) *nodeRow {
	row := c.row(entity)
	if row == nil {
		panic(fmt.Sprintf("lattice: %s on unregistered entity %v", op, entity))
	}
	return row
}

// --- Visibility and change tracking ---

// Visible reports whether the node takes part in layout and rendering.
// Unregistered entities report true: a node is presumed visible until a
// registered row says otherwise.
func (c *NodeCache) Visible(entity Entity) bool {
	if row := c.row(entity); row != nil {
		return row.visible
	}
	return true
}

// SetVisible sets the node's visibility. Strict.
func (c *NodeCache) SetVisible(entity Entity, value bool) {
	c.mustRow(entity, "SetVisible").visible = value
}

// GeometryChanged returns the node's change bits, or the all-clear set for an
// unregistered entity.
func (c *NodeCache) GeometryChanged(entity Entity) GeometryChanged {
	if row := c.row(entity); row != nil {
		return row.geometryChanged
	}
	return 0
}

// SetGeometryChanged sets or clears one change flag, leaving the others
// untouched. No-op for an unregistered entity: change bits travel with the
// Rect they describe, so they share its tolerant policy.
func (c *NodeCache) SetGeometryChanged(entity Entity, flag GeometryChanged, value bool) {
	if row := c.row(entity); row != nil {
		row.geometryChanged.Set(flag, value)
	} else {
		debugWarnMissedWrite("SetGeometryChanged", entity)
	}
}

// --- Rect (tolerant) ---

// PosX returns the node's final horizontal position, or 0 if unregistered.
func (c *NodeCache) PosX(entity Entity) float32 {
	if row := c.row(entity); row != nil {
		return row.rect.PosX
	}
	return 0
}

// PosY returns the node's final vertical position, or 0 if unregistered.
func (c *NodeCache) PosY(entity Entity) float32 {
	if row := c.row(entity); row != nil {
		return row.rect.PosY
	}
	return 0
}

// Width returns the node's final width, or 0 if unregistered.
func (c *NodeCache) Width(entity Entity) float32 {
	if row := c.row(entity); row != nil {
		return row.rect.Width
	}
	return 0
}

// Height returns the node's final height, or 0 if unregistered.
func (c *NodeCache) Height(entity Entity) float32 {
	if row := c.row(entity); row != nil {
		return row.rect.Height
	}
	return 0
}

// Bounds returns the node's whole final rectangle, or the zero Rect if
// unregistered.
func (c *NodeCache) Bounds(entity Entity) Rect {
	if row := c.row(entity); row != nil {
		return row.rect
	}
	return Rect{}
}

// SetPosX sets the node's final horizontal position. No-op if unregistered.
func (c *NodeCache) SetPosX(entity Entity, value float32) {
	if row := c.row(entity); row != nil {
		row.rect.PosX = value
	} else {
		debugWarnMissedWrite("SetPosX", entity)
	}
}

// SetPosY sets the node's final vertical position. No-op if unregistered.
func (c *NodeCache) SetPosY(entity Entity, value float32) {
	if row := c.row(entity); row != nil {
		row.rect.PosY = value
	} else {
		debugWarnMissedWrite("SetPosY", entity)
	}
}

// SetWidth sets the node's final width. No-op if unregistered.
func (c *NodeCache) SetWidth(entity Entity, value float32) {
	if row := c.row(entity); row != nil {
		row.rect.Width = value
	} else {
		debugWarnMissedWrite("SetWidth", entity)
	}
}

// SetHeight sets the node's final height. No-op if unregistered.
func (c *NodeCache) SetHeight(entity Entity, value float32) {
	if row := c.row(entity); row != nil {
		row.rect.Height = value
	} else {
		debugWarnMissedWrite("SetHeight", entity)
	}
}

// --- Space (tolerant) ---

// Left returns the node's resolved left inset, or 0 if unregistered.
func (c *NodeCache) Left(entity Entity) float32 {
	if row := c.row(entity); row != nil {
		return row.space.Left
	}
	return 0
}

// Right returns the node's resolved right inset, or 0 if unregistered.
func (c *NodeCache) Right(entity Entity) float32 {
	if row := c.row(entity); row != nil {
		return row.space.Right
	}
	return 0
}

// Top returns the node's resolved top inset, or 0 if unregistered.
func (c *NodeCache) Top(entity Entity) float32 {
	if row := c.row(entity); row != nil {
		return row.space.Top
	}
	return 0
}

// Bottom returns the node's resolved bottom inset, or 0 if unregistered.
func (c *NodeCache) Bottom(entity Entity) float32 {
	if row := c.row(entity); row != nil {
		return row.space.Bottom
	}
	return 0
}

// SetLeft sets the node's resolved left inset. No-op if unregistered.
func (c *NodeCache) SetLeft(entity Entity, value float32) {
	if row := c.row(entity); row != nil {
		row.space.Left = value
	} else {
		debugWarnMissedWrite("SetLeft", entity)
	}
}

// SetRight sets the node's resolved right inset. No-op if unregistered.
func (c *NodeCache) SetRight(entity Entity, value float32) {
	if row := c.row(entity); row != nil {
		row.space.Right = value
	} else {
		debugWarnMissedWrite("SetRight", entity)
	}
}

// SetTop sets the node's resolved top inset. No-op if unregistered.
func (c *NodeCache) SetTop(entity Entity, value float32) {
	if row := c.row(entity); row != nil {
		row.space.Top = value
	} else {
		debugWarnMissedWrite("SetTop", entity)
	}
}

// SetBottom sets the node's resolved bottom inset. No-op if unregistered.
func (c *NodeCache) SetBottom(entity Entity, value float32) {
	if row := c.row(entity); row != nil {
		row.space.Bottom = value
	} else {
		debugWarnMissedWrite("SetBottom", entity)
	}
}

// --- Size (tolerant) ---

// RequestedWidth returns the node's requested width, or 0 if unregistered.
func (c *NodeCache) RequestedWidth(entity Entity) float32 {
	if row := c.row(entity); row != nil {
		return row.size.Width
	}
	return 0
}

// RequestedHeight returns the node's requested height, or 0 if unregistered.
func (c *NodeCache) RequestedHeight(entity Entity) float32 {
	if row := c.row(entity); row != nil {
		return row.size.Height
	}
	return 0
}

// SetRequestedWidth sets the node's requested width. No-op if unregistered.
func (c *NodeCache) SetRequestedWidth(entity Entity, value float32) {
	if row := c.row(entity); row != nil {
		row.size.Width = value
	} else {
		debugWarnMissedWrite("SetRequestedWidth", entity)
	}
}

// SetRequestedHeight sets the node's requested height. No-op if unregistered.
func (c *NodeCache) SetRequestedHeight(entity Entity, value float32) {
	if row := c.row(entity); row != nil {
		row.size.Height = value
	} else {
		debugWarnMissedWrite("SetRequestedHeight", entity)
	}
}

// --- Accumulators (strict) ---

// ChildWidthMax returns the computed maximum width of the child nodes.
func (c *NodeCache) ChildWidthMax(entity Entity) float32 {
	return c.mustRow(entity, "ChildWidthMax").childWidthMax
}

// ChildWidthSum returns the computed sum of the widths of the child nodes.
func (c *NodeCache) ChildWidthSum(entity Entity) float32 {
	return c.mustRow(entity, "ChildWidthSum").childWidthSum
}

// ChildHeightMax returns the computed maximum height of the child nodes.
func (c *NodeCache) ChildHeightMax(entity Entity) float32 {
	return c.mustRow(entity, "ChildHeightMax").childHeightMax
}

// ChildHeightSum returns the computed sum of the heights of the child nodes.
func (c *NodeCache) ChildHeightSum(entity Entity) float32 {
	return c.mustRow(entity, "ChildHeightSum").childHeightSum
}

func (c *NodeCache) SetChildWidthMax(entity Entity, value float32) {
	c.mustRow(entity, "SetChildWidthMax").childWidthMax = value
}

func (c *NodeCache) SetChildWidthSum(entity Entity, value float32) {
	c.mustRow(entity, "SetChildWidthSum").childWidthSum = value
}

func (c *NodeCache) SetChildHeightMax(entity Entity, value float32) {
	c.mustRow(entity, "SetChildHeightMax").childHeightMax = value
}

func (c *NodeCache) SetChildHeightSum(entity Entity, value float32) {
	c.mustRow(entity, "SetChildHeightSum").childHeightSum = value
}

// GridRowMax returns the computed maximum grid row.
func (c *NodeCache) GridRowMax(entity Entity) float32 {
	return c.mustRow(entity, "GridRowMax").gridRowMax
}

// GridColMax returns the computed maximum grid column.
func (c *NodeCache) GridColMax(entity Entity) float32 {
	return c.mustRow(entity, "GridColMax").gridColMax
}

func (c *NodeCache) SetGridRowMax(entity Entity, value float32) {
	c.mustRow(entity, "SetGridRowMax").gridRowMax = value
}

func (c *NodeCache) SetGridColMax(entity Entity, value float32) {
	c.mustRow(entity, "SetGridColMax").gridColMax = value
}

// HorizontalFreeSpace returns the free space left on the horizontal axis
// after fixed children are placed.
func (c *NodeCache) HorizontalFreeSpace(entity Entity) float32 {
	return c.mustRow(entity, "HorizontalFreeSpace").horizontalFreeSpace
}

func (c *NodeCache) SetHorizontalFreeSpace(entity Entity, value float32) {
	c.mustRow(entity, "SetHorizontalFreeSpace").horizontalFreeSpace = value
}

// VerticalFreeSpace returns the free space left on the vertical axis after
// fixed children are placed.
func (c *NodeCache) VerticalFreeSpace(entity Entity) float32 {
	return c.mustRow(entity, "VerticalFreeSpace").verticalFreeSpace
}

func (c *NodeCache) SetVerticalFreeSpace(entity Entity, value float32) {
	c.mustRow(entity, "SetVerticalFreeSpace").verticalFreeSpace = value
}

// HorizontalStretchSum returns the sum of horizontal stretch factors among
// the node's children.
func (c *NodeCache) HorizontalStretchSum(entity Entity) float32 {
	return c.mustRow(entity, "HorizontalStretchSum").horizontalStretchSum
}

func (c *NodeCache) SetHorizontalStretchSum(entity Entity, value float32) {
	c.mustRow(entity, "SetHorizontalStretchSum").horizontalStretchSum = value
}

// VerticalStretchSum returns the sum of vertical stretch factors among the
// node's children.
func (c *NodeCache) VerticalStretchSum(entity Entity) float32 {
	return c.mustRow(entity, "VerticalStretchSum").verticalStretchSum
}

func (c *NodeCache) SetVerticalStretchSum(entity Entity, value float32) {
	c.mustRow(entity, "SetVerticalStretchSum").verticalStretchSum = value
}

// --- Stack markers (strict) ---

// StackFirstChild reports whether the node is the first child of its stack.
func (c *NodeCache) StackFirstChild(entity Entity) bool {
	return c.mustRow(entity, "StackFirstChild").stackFirstChild
}

func (c *NodeCache) SetStackFirstChild(entity Entity, value bool) {
	c.mustRow(entity, "SetStackFirstChild").stackFirstChild = value
}

// StackLastChild reports whether the node is the last child of its stack.
func (c *NodeCache) StackLastChild(entity Entity) bool {
	return c.mustRow(entity, "StackLastChild").stackLastChild
}

func (c *NodeCache) SetStackLastChild(entity Entity, value bool) {
	c.mustRow(entity, "SetStackLastChild").stackLastChild = value
}

// --- Layer ---

// Layer returns the node's painting layer and whether one was ever assigned.
// Layers live outside the arena rows: Register never defaults one, and only
// Remove discards one.
func (c *NodeCache) Layer(entity Entity) (uint32, bool) {
	value, ok := c.layer[entity]
	return value, ok
}

// SetLayer assigns the node's painting layer.
func (c *NodeCache) SetLayer(entity Entity, value uint32) {
	c.layer[entity] = value
}

// compile-time interface check
var _ Cache = (*NodeCache)(nil)

package lattice

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color is an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float32
}

// whitePixel is a 1x1 white image scaled to draw solid rectangles.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// Overlay draws the cache's final rectangles as outlines for visual
// debugging: every registered, visible entity is traced in Color, and
// entities with pending GeometryChanged bits are traced in HighlightColor
// instead, so a glance shows what the last pass moved. Entities are drawn in
// ascending layer order (unassigned layers draw first).
//
// Attach it to the end of a frame:
//
//	overlay := lattice.NewOverlay()
//	overlay.Draw(screen, cache)
type Overlay struct {
	// Color traces rects with no pending change bits.
	Color Color
	// HighlightColor traces rects whose GeometryChanged set is non-empty.
	HighlightColor Color
	// Thickness is the outline width in pixels.
	Thickness float32

	// scratch reused across frames to avoid per-frame allocation
	order []Entity
}

// NewOverlay returns an Overlay with a green outline, an orange highlight,
// and 1px thickness.
func NewOverlay() *Overlay {
	return &Overlay{
		Color:          Color{R: 0.2, G: 0.9, B: 0.4, A: 1},
		HighlightColor: Color{R: 1, G: 0.6, B: 0.1, A: 1},
		Thickness:      1,
	}
}

// Draw traces every registered visible entity's rectangle onto dst.
func (o *Overlay) Draw(dst *ebiten.Image, cache *NodeCache) {
	for _, e := range o.visibleByLayer(cache) {
		c := o.Color
		if cache.GeometryChanged(e).Any() {
			c = o.HighlightColor
		}
		for _, strip := range outlineStrips(cache.Bounds(e), o.Thickness) {
			fillRect(dst, strip, c)
		}
	}
}

// visibleByLayer collects the registered visible entities in ascending layer
// order. Entities without an assigned layer sort as layer 0; ties keep arena
// order.
func (o *Overlay) visibleByLayer(cache *NodeCache) []Entity {
	o.order = o.order[:0]
	cache.Each(func(e Entity) {
		if cache.Visible(e) {
			o.order = append(o.order, e)
		}
	})
	sort.SliceStable(o.order, func(i, j int) bool {
		li, _ := cache.Layer(o.order[i])
		lj, _ := cache.Layer(o.order[j])
		return li < lj
	})
	return o.order
}

// outlineStrips decomposes a rectangle outline of the given thickness into
// four solid strips: top, bottom, left, right. The side strips are inset
// vertically so corners are covered exactly once. Rectangles thinner than
// twice the thickness degenerate into overlapping strips, which is acceptable
// for a debug trace.
func outlineStrips(r Rect, thickness float32) [4]Rect {
	return [4]Rect{
		{PosX: r.PosX, PosY: r.PosY, Width: r.Width, Height: thickness},
		{PosX: r.PosX, PosY: r.PosY + r.Height - thickness, Width: r.Width, Height: thickness},
		{PosX: r.PosX, PosY: r.PosY + thickness, Width: thickness, Height: r.Height - 2*thickness},
		{PosX: r.PosX + r.Width - thickness, PosY: r.PosY + thickness, Width: thickness, Height: r.Height - 2*thickness},
	}
}

// fillRect draws a solid rectangle by scaling the shared white pixel.
func fillRect(dst *ebiten.Image, r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(r.Width), float64(r.Height))
	opts.GeoM.Translate(float64(r.PosX), float64(r.PosY))
	opts.ColorScale.Scale(c.R*c.A, c.G*c.A, c.B*c.A, c.A)
	dst.DrawImage(whitePixel, opts)
}

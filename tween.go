package lattice

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RectTween animates an entity's cached rectangle toward a target Rect. Each
// Update writes the interpolated fields back through the cache's tolerant
// setters and raises the matching GeometryChanged bit for every field that
// actually moved, so downstream consumers see the animation as ordinary
// layout changes.
//
// If the entity is removed from the cache mid-animation, the tween stops
// (the writes would be dropped anyway) and Done is set.
//
// There is no global animation manager — users call Update themselves.
type RectTween struct {
	tweens [4]*gween.Tween
	cache  Cache
	entity Entity
	Done   bool
}

// rect field order inside RectTween.tweens.
const (
	tweenPosX = iota
	tweenPosY
	tweenWidth
	tweenHeight
)

// TweenRect creates a RectTween from the entity's current cached rectangle to
// the target rectangle over the given duration, using the easing function.
func TweenRect(cache Cache, entity Entity, to Rect, duration float32, fn ease.TweenFunc) *RectTween {
	t := &RectTween{cache: cache, entity: entity}
	t.tweens[tweenPosX] = gween.New(cache.PosX(entity), to.PosX, duration, fn)
	t.tweens[tweenPosY] = gween.New(cache.PosY(entity), to.PosY, duration, fn)
	t.tweens[tweenWidth] = gween.New(cache.Width(entity), to.Width, duration, fn)
	t.tweens[tweenHeight] = gween.New(cache.Height(entity), to.Height, duration, fn)
	return t
}

// Update advances the animation by dt seconds, writes the new rectangle to
// the cache, and marks which geometry fields changed. Once every field has
// reached its target, Done is set and further calls do nothing.
func (t *RectTween) Update(dt float32) {
	if t.Done {
		return
	}
	if !t.cache.Registered(t.entity) {
		t.Done = true
		return
	}

	posx, f0 := t.tweens[tweenPosX].Update(dt)
	posy, f1 := t.tweens[tweenPosY].Update(dt)
	width, f2 := t.tweens[tweenWidth].Update(dt)
	height, f3 := t.tweens[tweenHeight].Update(dt)

	if posx != t.cache.PosX(t.entity) {
		t.cache.SetPosX(t.entity, posx)
		t.cache.SetGeometryChanged(t.entity, PosXChanged, true)
	}
	if posy != t.cache.PosY(t.entity) {
		t.cache.SetPosY(t.entity, posy)
		t.cache.SetGeometryChanged(t.entity, PosYChanged, true)
	}
	if width != t.cache.Width(t.entity) {
		t.cache.SetWidth(t.entity, width)
		t.cache.SetGeometryChanged(t.entity, WidthChanged, true)
	}
	if height != t.cache.Height(t.entity) {
		t.cache.SetHeight(t.entity, height)
		t.cache.SetGeometryChanged(t.entity, HeightChanged, true)
	}

	t.Done = f0 && f1 && f2 && f3
}

package scene

import "github.com/solarlune/resolv"

// Rect is an axis-aligned rectangle in screen space, top-left origin, y down.
type Rect struct {
	X, Y, W, H float64
}

// centered builds a rect of size w×h around (cx, cy).
func centered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

const (
	tagEarth    = "earth"
	tagObstacle = "obstacle"
)

func newCollider(r Rect, tag string) *resolv.Object {
	return resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
}

// syncCollider copies the current visual bounds into the collider so overlap
// tests see the scaled and pulsed size.
func syncCollider(obj *resolv.Object, r Rect) {
	obj.Position.X, obj.Position.Y = r.X, r.Y
	obj.Size.X, obj.Size.Y = r.W, r.H
}

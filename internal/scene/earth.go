package scene

import (
	"math"
	"time"

	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
)

// Earth is the stationary, player-scaled sprite at the centre of the scene.
type Earth struct {
	X, Y  float64
	Size  float64
	scale float64

	angle    float64
	spin     *gween.Sequence
	collider *resolv.Object
}

func newEarth(x, y, size float64, spinPeriod time.Duration) *Earth {
	e := &Earth{X: x, Y: y, Size: size, scale: 1, spin: spinning(spinPeriod)}
	e.collider = newCollider(e.Bounds(), tagEarth)
	return e
}

func (e *Earth) Scale() float64 { return e.scale }

// Angle is the clockwise rotation in radians, in [0, 2π).
func (e *Earth) Angle() float64 { return e.angle }

func (e *Earth) advance(dt time.Duration) {
	v, _, _ := e.spin.Update(seconds(dt))
	e.angle = math.Mod(float64(v), 2*math.Pi)
}

// Bounds are the current scaled bounds.
func (e *Earth) Bounds() Rect {
	side := e.Size * e.scale
	return centered(e.X, e.Y, side, side)
}

// scaleBy applies one scale command and reports whether anything changed.
// The clamp lands exactly on the bound so repeated commands settle there.
func (e *Earth) scaleBy(dir Direction, r Rules) bool {
	switch dir {
	case ScaleUp:
		if e.scale >= r.ScaleMax {
			return false
		}
		e.scale = math.Min(e.scale*r.ScaleUpFactor, r.ScaleMax)
	case ScaleDown:
		if e.scale <= r.ScaleMin {
			return false
		}
		e.scale = math.Max(e.scale*r.ScaleDownFactor, r.ScaleMin)
	default:
		return false
	}
	syncCollider(e.collider, e.Bounds())
	return true
}

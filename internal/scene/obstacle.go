package scene

import (
	"fmt"
	"image/color"
	"time"

	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
)

// ObstacleSpec places an obstacle. X and Y are the centre; the obstacle then
// travels left at the speed of a full right-to-left traversal.
type ObstacleSpec struct {
	X, Y  float64
	Width float64
	Color color.RGBA
}

// Obstacle is a moving rectangular hazard.
type Obstacle struct {
	ID    uint64
	Color color.RGBA

	x, y          float64
	width, height float64
	scale         float64
	done          bool

	travel   *gween.Tween
	pulse    *gween.Sequence
	collider *resolv.Object
}

func (o *Obstacle) Position() (float64, float64) { return o.x, o.y }

// BaseWidth is the width before the pulse is applied.
func (o *Obstacle) BaseWidth() float64 { return o.width }

// WidthScale oscillates between the pulse bounds, starting at their midpoint.
func (o *Obstacle) WidthScale() float64 { return o.scale }

func (o *Obstacle) Bounds() Rect {
	return centered(o.x, o.y, o.width*o.WidthScale(), o.height)
}

func (o *Obstacle) advance(dt time.Duration) {
	x, done := o.travel.Update(seconds(dt))
	scale, _, _ := o.pulse.Update(seconds(dt))
	o.x, o.done, o.scale = float64(x), done, float64(scale)
}

// exited reports whether the obstacle has finished its traversal past the
// left boundary.
func (o *Obstacle) exited() bool { return o.done }

// checkWidth enforces the spawn width range for a screen of the given width.
func (r Rules) checkWidth(width, screenWidth float64) error {
	hi := r.maxObstacleWidth(screenWidth)
	if width < r.ObstacleMinWidth || width > hi {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrObstacleWidth, width, r.ObstacleMinWidth, hi)
	}
	return nil
}

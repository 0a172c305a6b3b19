package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"earthdodge/internal/scene"
)

// DrawObstacles fills each obstacle's current (pulsed) bounds with its colour.
func DrawObstacles(screen *ebiten.Image, obstacles []*scene.Obstacle) {
	for _, o := range obstacles {
		b := o.Bounds()
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), o.Color, false)
	}
}

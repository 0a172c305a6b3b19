package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"earthdodge/internal/scene"
)

var (
	ColOcean = color.RGBA{0x28, 0x64, 0xc8, 0xff}
	ColLand  = color.RGBA{0x46, 0xa0, 0x46, 0xff}
)

// EarthSprite draws the scene's Earth: rotated about its centre and scaled to
// its current bounds.
type EarthSprite struct {
	img *ebiten.Image
}

// NewEarthSprite accepts a nil image; Draw then falls back to vector shapes.
func NewEarthSprite(img *ebiten.Image) *EarthSprite {
	return &EarthSprite{img: img}
}

func (s *EarthSprite) Draw(screen *ebiten.Image, e *scene.Earth) {
	if e == nil {
		return
	}
	side := e.Size * e.Scale()

	if s.img == nil {
		s.drawVector(screen, e, float32(side/2))
		return
	}

	w, h := s.img.Bounds().Dx(), s.img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	// Pivot around the centre, then place.
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(side/float64(w), side/float64(h))
	op.GeoM.Rotate(e.Angle())
	op.GeoM.Translate(e.X, e.Y)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(s.img, op)
}

// drawVector is a two-tone disc with a continent that orbits with the spin,
// so rotation stays visible without the sprite.
func (s *EarthSprite) drawVector(screen *ebiten.Image, e *scene.Earth, r float32) {
	cx, cy := float32(e.X), float32(e.Y)
	vector.DrawFilledCircle(screen, cx, cy, r, ColOcean, true)

	geo := ebiten.GeoM{}
	geo.Translate(float64(r)*0.45, 0)
	geo.Rotate(e.Angle())
	lx, ly := geo.Apply(0, 0)
	vector.DrawFilledCircle(screen, cx+float32(lx), cy+float32(ly), r*0.35, ColLand, true)
}

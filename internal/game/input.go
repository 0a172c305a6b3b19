package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"earthdodge/internal/scene"
)

var ColButton = color.RGBA{0xff, 0xff, 0xff, 0x40}

const (
	buttonSize   = 64
	buttonMargin = 24
)

// button is an on-screen scale control.
type button struct {
	Rect  image.Rectangle
	Dir   scene.Direction
	Label string
}

// layoutButtons puts "-" bottom-left and "+" bottom-right.
func layoutButtons(w, h int) []button {
	y := h - buttonMargin - buttonSize
	return []button{
		{
			Rect:  image.Rect(buttonMargin, y, buttonMargin+buttonSize, y+buttonSize),
			Dir:   scene.ScaleDown,
			Label: "-",
		},
		{
			Rect:  image.Rect(w-buttonMargin-buttonSize, y, w-buttonMargin, y+buttonSize),
			Dir:   scene.ScaleUp,
			Label: "+",
		},
	}
}

func buttonAt(buttons []button, p image.Point) (scene.Direction, bool) {
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b.Dir, true
		}
	}
	return 0, false
}

func drawButtons(screen *ebiten.Image, buttons []button) {
	for _, b := range buttons {
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), ColButton, false)
		ebitenutil.DebugPrintAt(screen, b.Label, r.Min.X+r.Dx()/2-3, r.Min.Y+r.Dy()/2-8)
	}
}

// justPressedPoints collects this frame's new touches and left clicks in
// screen coordinates.
func justPressedPoints() []image.Point {
	var points []image.Point
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		points = append(points, image.Pt(x, y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		points = append(points, image.Pt(ebiten.CursorPosition()))
	}
	return points
}

var scaleKeys = map[ebiten.Key]scene.Direction{
	ebiten.KeyEqual:          scene.ScaleUp,
	ebiten.KeyNumpadAdd:      scene.ScaleUp,
	ebiten.KeyArrowUp:        scene.ScaleUp,
	ebiten.KeyMinus:          scene.ScaleDown,
	ebiten.KeyNumpadSubtract: scene.ScaleDown,
	ebiten.KeyArrowDown:      scene.ScaleDown,
}

func keyCommands() []scene.Direction {
	var dirs []scene.Direction
	for k, dir := range scaleKeys {
		if inpututil.IsKeyJustPressed(k) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

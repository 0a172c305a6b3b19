package prompt

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type State int

const (
	Hidden State = iota // Nothing on screen
	Shown               // Waiting for the player
)

var (
	colShade  = color.RGBA{0x00, 0x00, 0x00, 0xa0}
	colPanel  = color.RGBA{0x2d, 0x2d, 0x2d, 0xff}
	colButton = color.RGBA{0xff, 0x6b, 0x6b, 0xff}
)

const (
	panelW, panelH   = 240, 120
	buttonW, buttonH = 120, 32
)

// Restart is the modal shown at game over. It satisfies scene.Prompter.
type Restart struct {
	State   State
	Title   string
	Message string
	Button  string

	onConfirm     func()
	width, height int
}

func NewRestart(screenW, screenH int) *Restart {
	return &Restart{
		State:   Hidden,
		Title:   "Game over",
		Message: "Restart the game",
		Button:  "Restart",
		width:   screenW,
		height:  screenH,
	}
}

func (r *Restart) PresentRestartPrompt(onConfirm func()) {
	r.onConfirm = onConfirm
	r.State = Shown
}

func (r *Restart) Visible() bool { return r.State == Shown }

// Confirm hides the prompt and runs the callback once.
func (r *Restart) Confirm() bool {
	if r.State != Shown {
		return false
	}
	r.State = Hidden
	fn := r.onConfirm
	r.onConfirm = nil
	if fn != nil {
		fn()
	}
	return true
}

func (r *Restart) panelRect() image.Rectangle {
	x := (r.width - panelW) / 2
	y := (r.height - panelH) / 2
	return image.Rect(x, y, x+panelW, y+panelH)
}

// ButtonRect is the tappable area of the restart button.
func (r *Restart) ButtonRect() image.Rectangle {
	p := r.panelRect()
	x := p.Min.X + (panelW-buttonW)/2
	y := p.Max.Y - buttonH - 12
	return image.Rect(x, y, x+buttonW, y+buttonH)
}

// HandleTaps confirms when any tap lands on the button.
func (r *Restart) HandleTaps(taps []image.Point) bool {
	if r.State != Shown {
		return false
	}
	btn := r.ButtonRect()
	for _, p := range taps {
		if p.In(btn) {
			return r.Confirm()
		}
	}
	return false
}

func (r *Restart) Update(taps []image.Point) {
	if r.State != Shown {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		r.Confirm()
		return
	}
	r.HandleTaps(taps)
}

func (r *Restart) Draw(screen *ebiten.Image) {
	if r.State != Shown {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(r.width), float32(r.height), colShade, false)

	p := r.panelRect()
	vector.DrawFilledRect(screen, float32(p.Min.X), float32(p.Min.Y), panelW, panelH, colPanel, false)

	ebitenutil.DebugPrintAt(screen, r.Title, p.Min.X+16, p.Min.Y+14)
	ebitenutil.DebugPrintAt(screen, r.Message, p.Min.X+16, p.Min.Y+36)

	b := r.ButtonRect()
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), buttonW, buttonH, colButton, false)
	ebitenutil.DebugPrintAt(screen, r.Button, b.Min.X+(buttonW-len(r.Button)*6)/2, b.Min.Y+(buttonH-16)/2)
}

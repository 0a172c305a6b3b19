package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"earthdodge/internal/assets"
	"earthdodge/internal/config"
	"earthdodge/internal/entity"
	"earthdodge/internal/haptics"
	"earthdodge/internal/logger"
	"earthdodge/internal/prompt"
	"earthdodge/internal/scene"
)

// --- Colors ---
var (
	ColBg = color.RGBA{0x0a, 0x0c, 0x1e, 0xff}
)

// --- Enums ---
type Mode int

const (
	ModeDodge   Mode = iota // Obstacles, hits, game over
	ModeSandbox             // Scale and spin only
)

func (m Mode) String() string {
	if m == ModeSandbox {
		return "SANDBOX"
	}
	return "DODGE"
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "dodge", "":
		return ModeDodge, nil
	case "sandbox":
		return ModeSandbox, nil
	}
	return ModeDodge, fmt.Errorf("unknown mode %q", s)
}

// --- Main Game State ---
type Game struct {
	Mode Mode
	Tick int

	cfg config.Config
	log logger.Logger

	scene   *scene.Controller
	prompt  *prompt.Restart
	haptics *haptics.Engine

	earth      *entity.EarthSprite
	background *ebiten.Image
	buttons    []button
}

// New wires the scene to Ebitengine and starts the first session. Missing
// sprites and haptics are logged and the game runs without them.
func New(cfg config.Config, log logger.Logger) (*Game, error) {
	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	log = log.Named("game")

	g := &Game{
		Mode:    mode,
		cfg:     cfg,
		log:     log,
		prompt:  prompt.NewRestart(cfg.Screen.Width, cfg.Screen.Height),
		buttons: layoutButtons(cfg.Screen.Width, cfg.Screen.Height),
	}

	earthImg, err := assets.LoadImage(assets.Earth)
	if err != nil {
		log.Warn("earth sprite unavailable, drawing vectors", logger.Field{Key: "error", Value: err})
	}
	g.earth = entity.NewEarthSprite(earthImg)
	if g.background, err = assets.LoadImage(assets.Background); err != nil {
		log.Warn("background unavailable", logger.Field{Key: "error", Value: err})
	}

	opts := scene.Options{
		Rules:    cfg.Rules,
		Width:    float64(cfg.Screen.Width),
		Height:   float64(cfg.Screen.Height),
		Rand:     rand.New(rand.NewSource(seed(cfg.Seed))),
		Prompter: g.prompt,
		Logger:   log,
		Sandbox:  mode == ModeSandbox,
	}
	if h, err := haptics.New(cfg.Haptics); err != nil {
		log.Warn("haptics unavailable", logger.Field{Key: "error", Value: err})
	} else {
		g.haptics = h
		opts.Haptics = h
	}

	if g.scene, err = scene.NewController(opts); err != nil {
		return nil, err
	}
	g.scene.StartSession()
	return g, nil
}

func seed(configured int64) int64 {
	if configured != 0 {
		return configured
	}
	return time.Now().UnixNano()
}

// --- UPDATE ---
func (g *Game) Update() error {
	g.Tick++

	// Mode Switching
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.switchMode(ModeDodge)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.switchMode(ModeSandbox)
	}

	taps := justPressedPoints()
	if g.prompt.Visible() {
		g.prompt.Update(taps)
		return nil
	}

	for _, dir := range keyCommands() {
		g.scene.ScaleEarth(dir)
	}
	for _, p := range taps {
		if dir, ok := buttonAt(g.buttons, p); ok {
			g.scene.ScaleEarth(dir)
		}
	}

	g.scene.Tick(frameDuration(ebiten.TPS()))
	return nil
}

func frameDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func (g *Game) switchMode(m Mode) {
	if g.Mode == m {
		return
	}
	g.Mode = m
	g.prompt.State = prompt.Hidden
	g.scene.SetSandbox(m == ModeSandbox)
	g.scene.StartSession()
	g.log.Info("mode switched", logger.Field{Key: "mode", Value: m})
}

// --- DRAW ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)

	if g.background != nil {
		op := &ebiten.DrawImageOptions{}
		bw, bh := g.background.Bounds().Dx(), g.background.Bounds().Dy()
		op.GeoM.Scale(float64(g.cfg.Screen.Width)/float64(bw), float64(g.cfg.Screen.Height)/float64(bh))
		screen.DrawImage(g.background, op)
	}

	entity.DrawObstacles(screen, g.scene.Obstacles())
	g.earth.Draw(screen, g.scene.Earth())

	drawButtons(screen, g.buttons)
	ebitenutil.DebugPrint(screen, g.hud())

	g.prompt.Draw(screen)
}

func (g *Game) hud() string {
	stats := g.scene.Stats()
	if g.Mode == ModeSandbox {
		return fmt.Sprintf("%s MODE\nScale: %.2f", g.Mode, g.scene.Earth().Scale())
	}
	return fmt.Sprintf("%s MODE\nHits: %d/%d\nDodged: %d",
		g.Mode, g.scene.Hits(), g.scene.Rules().HitLimit, stats.Dodged)
}

func (g *Game) Layout(w, h int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Close releases the haptics audio player.
func (g *Game) Close() error {
	if g.haptics != nil {
		if err := g.haptics.Close(); err != nil {
			return err
		}
	}
	return nil
}

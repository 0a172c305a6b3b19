// Package haptics turns collisions into a vibration and, optionally, a short
// audible thump.
package haptics

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"earthdodge/internal/config"
)

// Engine plays one pulse per collision.
type Engine struct {
	cfg    config.Haptics
	player *audio.Player
}

// New prepares the pulse. A disabled config yields an engine whose Pulse does
// nothing. The audio context is shared with anything else that already made one.
func New(cfg config.Haptics) (*Engine, error) {
	e := &Engine{cfg: cfg}
	if !cfg.Enabled || !cfg.Thump {
		return e, nil
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	if ctx.SampleRate() != SampleRate {
		return nil, fmt.Errorf("haptics: audio context runs at %d Hz, want %d", ctx.SampleRate(), SampleRate)
	}

	pcm := thump(cfg.Duration.Seconds()*1.5, 90, 0.9)
	player, err := ctx.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return nil, fmt.Errorf("haptics: create thump player: %w", err)
	}
	player.SetVolume(cfg.Volume)
	e.player = player
	return e, nil
}

func (e *Engine) Pulse() error {
	if !e.cfg.Enabled {
		return nil
	}
	if e.cfg.Vibrate {
		// No-op on platforms without a motor.
		ebiten.Vibrate(&ebiten.VibrateOptions{
			Duration:  e.cfg.Duration,
			Magnitude: e.cfg.Magnitude,
		})
	}
	if e.player == nil {
		return nil
	}
	if err := e.player.Rewind(); err != nil {
		return fmt.Errorf("haptics: rewind thump: %w", err)
	}
	e.player.Play()
	return nil
}

// Close releases the audio player.
func (e *Engine) Close() error {
	if e.player == nil {
		return nil
	}
	return e.player.Close()
}

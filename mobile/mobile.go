// Package mobile is the entry point for `ebitenmobile bind`.
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"earthdodge/internal/config"
	"earthdodge/internal/game"
	"earthdodge/internal/logger"
)

func init() {
	// No file system config on devices: defaults plus whatever the host exported.
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	lg, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	g, err := game.New(cfg, lg)
	if err != nil {
		panic(err)
	}
	mobile.SetGame(g)
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}

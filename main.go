package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"earthdodge/internal/config"
	"earthdodge/internal/game"
	"earthdodge/internal/logger"
)

func main() {
	configPath := flag.String("config", os.Getenv(config.EnvConfig), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	// 1. Window Setup
	ebiten.SetWindowSize(int(float64(cfg.Screen.Width)*cfg.Screen.WindowScale), int(float64(cfg.Screen.Height)*cfg.Screen.WindowScale))
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 2. Initialize Game
	g, err := game.New(cfg, lg)
	if err != nil {
		lg.Error("game setup failed", logger.Field{Key: "error", Value: err})
		_ = lg.Sync()
		os.Exit(1)
	}
	defer func() { _ = g.Close() }()

	// 3. Run Loop
	if err := ebiten.RunGame(g); err != nil {
		lg.Error("game loop stopped", logger.Field{Key: "error", Value: err})
	}
}

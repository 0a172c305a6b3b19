// Package config loads the game's YAML configuration: defaults, then an
// optional file, then environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"earthdodge/internal/logger"
	"earthdodge/internal/scene"
)

// Environment variables consulted by Load.
const (
	EnvConfig    = "EARTHDODGE_CONFIG"
	EnvMode      = "EARTHDODGE_MODE"
	EnvSeed      = "EARTHDODGE_SEED"
	EnvLogLevel  = "EARTHDODGE_LOG_LEVEL"
	EnvLogFormat = "EARTHDODGE_LOG_FORMAT"
	EnvLogDev    = "EARTHDODGE_LOG_DEV"
	EnvHaptics   = "EARTHDODGE_HAPTICS"
)

type Screen struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Title       string  `yaml:"title"`
	WindowScale float64 `yaml:"window_scale"`
}

// Haptics tunes the collision pulse: a vibration and an optional audible thump.
type Haptics struct {
	Enabled   bool          `yaml:"enabled"`
	Vibrate   bool          `yaml:"vibrate"`
	Duration  time.Duration `yaml:"duration"`
	Magnitude float64       `yaml:"magnitude"` // 0..1
	Thump     bool          `yaml:"thump"`
	Volume    float64       `yaml:"volume"` // 0..1
}

func DefaultHaptics() Haptics {
	return Haptics{
		Enabled:   true,
		Vibrate:   true,
		Duration:  60 * time.Millisecond,
		Magnitude: 1,
		Thump:     true,
		Volume:    0.6,
	}
}

// Validate only checks an enabled pulse.
func (h Haptics) Validate() error {
	if !h.Enabled {
		return nil
	}
	if h.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %s", h.Duration)
	}
	if h.Magnitude < 0 || h.Magnitude > 1 || h.Volume < 0 || h.Volume > 1 {
		return fmt.Errorf("magnitude %g and volume %g must be in [0, 1]", h.Magnitude, h.Volume)
	}
	return nil
}

type Config struct {
	Screen  Screen        `yaml:"screen"`
	Mode    string        `yaml:"mode"` // dodge or sandbox
	Seed    int64         `yaml:"seed"` // 0 picks one from the clock
	Rules   scene.Rules   `yaml:"rules"`
	Haptics Haptics       `yaml:"haptics"`
	Log     logger.Config `yaml:"log"`
}

// Default is a portrait phone layout running the full game.
func Default() Config {
	return Config{
		Screen: Screen{
			Width:       390,
			Height:      844,
			Title:       "Earth Dodge",
			WindowScale: 1,
		},
		Mode:    "dodge",
		Rules:   scene.DefaultRules(),
		Haptics: DefaultHaptics(),
		Log:     logger.DefaultConfig(),
	}
}

// Load reads path (if not empty) over the defaults, applies env overrides and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		defer func() { _ = f.Close() }()
		if err := decode(f, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults without touching the
// environment.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode(bytes.NewReader(data), &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if mode := os.Getenv(EnvMode); mode != "" {
		cfg.Mode = strings.ToLower(mode)
	}
	if seed := os.Getenv(EnvSeed); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = v
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		cfg.Log.Format = format
	}
	if dev := os.Getenv(EnvLogDev); dev != "" {
		v, err := strconv.ParseBool(dev)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogDev, err)
		}
		cfg.Log.Development = v
	}
	if h := os.Getenv(EnvHaptics); h != "" {
		v, err := strconv.ParseBool(h)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHaptics, err)
		}
		cfg.Haptics.Enabled = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen %dx%d is invalid", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.WindowScale <= 0 {
		return fmt.Errorf("window_scale must be positive, got %g", c.Screen.WindowScale)
	}
	switch c.Mode {
	case "dodge", "sandbox":
	default:
		return fmt.Errorf("unknown mode %q (want dodge or sandbox)", c.Mode)
	}
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	if err := c.Haptics.Validate(); err != nil {
		return fmt.Errorf("haptics: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

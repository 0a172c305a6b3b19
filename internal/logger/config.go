package logger

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
	// Development switches to colour levels, caller-heavy output and
	// stacktraces from warn up.
	Development bool `yaml:"development"`
	// SampleInitial entries per message and second are kept, then every
	// SampleThereafter-th. Zero SampleInitial keeps everything.
	SampleInitial    int `yaml:"sample_initial"`
	SampleThereafter int `yaml:"sample_thereafter"`
}

func DefaultConfig() Config {
	return Config{Level: "info", Format: "console"}
}

func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return err
	}
	switch c.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q (want console or json)", c.Format)
	}
	if c.SampleInitial < 0 || c.SampleThereafter < 0 {
		return fmt.Errorf("sampling %d/%d must not be negative", c.SampleInitial, c.SampleThereafter)
	}
	return nil
}

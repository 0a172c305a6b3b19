package logger

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Levels(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	logs := recorded.All()
	if len(logs) != 4 {
		t.Fatalf("Expected 4 logs, got %d", len(logs))
	}

	expected := []zapcore.Level{
		zapcore.DebugLevel,
		zapcore.InfoLevel,
		zapcore.WarnLevel,
		zapcore.ErrorLevel,
	}
	for i, entry := range logs {
		if entry.Level != expected[i] {
			t.Errorf("Log %d: expected level %v, got %v", i, expected[i], entry.Level)
		}
	}
}

type mode int

func (mode) String() string { return "dodge" }

func TestZapLogger_Fields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	logger.Info("obstacle hit",
		Field{Key: "session", Value: "abc"},
		Field{Key: "hits", Value: 3},
		Field{Key: "obstacle", Value: uint64(7)},
		Field{Key: "scale", Value: 1.5},
		Field{Key: "paused", Value: true},
		Field{Key: "after", Value: 1500 * time.Millisecond},
		Field{Key: "error", Value: errors.New("boom")},
		Field{Key: "mode", Value: mode(0)},
	)

	logs := recorded.All()
	if len(logs) != 1 {
		t.Fatalf("Expected 1 log, got %d", len(logs))
	}
	ctx := logs[0].ContextMap()

	if ctx["session"] != "abc" {
		t.Errorf("session = %v", ctx["session"])
	}
	if ctx["hits"] != int64(3) {
		t.Errorf("hits = %v", ctx["hits"])
	}
	if ctx["obstacle"] != uint64(7) {
		t.Errorf("obstacle = %v", ctx["obstacle"])
	}
	if ctx["scale"] != 1.5 {
		t.Errorf("scale = %v", ctx["scale"])
	}
	if ctx["paused"] != true {
		t.Errorf("paused = %v", ctx["paused"])
	}
	if ctx["after"] != 1500*time.Millisecond {
		t.Errorf("after = %v", ctx["after"])
	}
	if ctx["error"] != "boom" {
		t.Errorf("error = %v", ctx["error"])
	}
	if ctx["mode"] != "dodge" {
		t.Errorf("mode = %v", ctx["mode"])
	}
}

func TestZapLogger_WithAndNamed(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core)).Named("scene").With(Field{Key: "session", Value: "abc"})

	logger.Info("session started")

	logs := recorded.All()
	if len(logs) != 1 {
		t.Fatalf("Expected 1 log, got %d", len(logs))
	}
	if logs[0].LoggerName != "scene" {
		t.Errorf("logger name = %q", logs[0].LoggerName)
	}
	if got := logs[0].ContextMap()["session"]; got != "abc" {
		t.Errorf("session = %v", got)
	}
}

func TestNew_Configs(t *testing.T) {
	configs := []Config{
		DefaultConfig(),
		{Level: "debug", Format: "console", Development: true},
		{Level: "warn", Format: "json", SampleInitial: 10, SampleThereafter: 100},
	}
	for _, cfg := range configs {
		l, err := New(cfg)
		if err != nil {
			t.Fatalf("New(%+v): %v", cfg, err)
		}
		l.Named("test").Debug("built")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]Config{
		"unknown level":     {Level: "loud", Format: "console"},
		"unknown format":    {Level: "info", Format: "xml"},
		"negative sampling": {Level: "info", Format: "json", SampleInitial: -1},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected an error")
			}
			if _, err := New(cfg); err == nil {
				t.Fatal("New accepted an invalid config")
			}
		})
	}
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Info("discarded", Field{Key: "k", Value: 1})
	if l.With(Field{Key: "k", Value: 2}).Named("x") == nil {
		t.Fatal("derived logger is nil")
	}
}

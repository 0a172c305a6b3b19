// Package logger is the structured logger shared by the scene, the Ebitengine
// glue and the entry points. Only this package imports zap.
package logger

// Logger is safe to call every frame; Debug entries cost nothing when the
// level filters them out.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	// Named scopes the logger to a component such as "scene" or "game".
	Named(component string) Logger
	Sync() error
}

type Field struct {
	Key   string
	Value any
}

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	z *zap.Logger
}

// New builds a zap-backed Logger from cfg.
func New(cfg Config) (Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	z, err := cfg.zapConfig().Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &zapLogger{z: z}, nil
}

func (c Config) zapConfig() zap.Config {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Encoding = c.Format

	level, _ := zapcore.ParseLevel(c.Level)
	zc.Level = zap.NewAtomicLevelAt(level)

	zc.Sampling = nil
	if c.SampleInitial > 0 {
		zc.Sampling = &zap.SamplingConfig{Initial: c.SampleInitial, Thereafter: c.SampleThereafter}
	}
	return zc
}

// FromZap wraps an existing zap logger, such as one on an observer core.
func FromZap(z *zap.Logger) Logger {
	return &zapLogger{z: z}
}

func NewNop() Logger {
	return &zapLogger{z: zap.NewNop()}
}

// zap.Any already maps errors to NamedError and fmt.Stringers to Stringer.
func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, zapFields(fields)...) }

func (l *zapLogger) Info(msg string, fields ...Field) { l.z.Info(msg, zapFields(fields)...) }

func (l *zapLogger) Warn(msg string, fields ...Field) { l.z.Warn(msg, zapFields(fields)...) }

func (l *zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, zapFields(fields)...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{z: l.z.With(zapFields(fields)...)}
}

func (l *zapLogger) Named(component string) Logger {
	return &zapLogger{z: l.z.Named(component)}
}

func (l *zapLogger) Sync() error { return l.z.Sync() }

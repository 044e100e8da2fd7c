// Package logging provides the structured logger used across dump-pruner.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the small logging surface the rest of the code depends on.
// Arguments after msg are alternating keys and values.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// ZapLogger adapts a sugared zap logger to Logger.
type ZapLogger struct {
	s *zap.SugaredLogger
}

func (l ZapLogger) Debug(msg string, kv ...any) { l.s.Debugw(msg, kv...) }
func (l ZapLogger) Info(msg string, kv ...any)  { l.s.Infow(msg, kv...) }
func (l ZapLogger) Warn(msg string, kv ...any)  { l.s.Warnw(msg, kv...) }
func (l ZapLogger) Error(msg string, kv ...any) { l.s.Errorw(msg, kv...) }

// Sync flushes buffered entries.
func (l ZapLogger) Sync() error {
	return l.s.Sync()
}

// With returns a logger that always carries the given fields.
func (l ZapLogger) With(kv ...any) ZapLogger {
	return ZapLogger{s: l.s.With(kv...)}
}

// WithRunID tags every entry with a fresh run identifier.
func (l ZapLogger) WithRunID() ZapLogger {
	return l.With("run_id", uuid.NewString())
}

// FromZap wraps an existing zap logger.
func FromZap(z *zap.Logger) ZapLogger {
	return ZapLogger{s: z.Sugar()}
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// New builds a logger writing to w. format is "console" or "json".
func New(w io.Writer, level, format string) (ZapLogger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return ZapLogger{}, err
	}

	var enc zapcore.Encoder
	switch format {
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	case "", "console":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	default:
		return ZapLogger{}, fmt.Errorf("unknown log format %q", format)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(lvl))
	return FromZap(zap.New(core)), nil
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return FromZap(zap.NewNop())
}

// Package logx is the process-wide logger facade backed by zap.
package logx

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

var (
	mu    sync.RWMutex
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	base  = mustBuild("console")
	sugar = base.Sugar()
)

func mustBuild(encoding string) *zap.Logger {
	logger, err := build(encoding)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func build(encoding string) (*zap.Logger, error) {
	if encoding != "json" {
		encoding = "console"
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            level,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
	return cfg.Build(zap.AddCallerSkip(1))
}

// Configure rebuilds the global logger with the given encoding ("console" or "json")
func Configure(encoding string) error {
	logger, err := build(encoding)
	if err != nil {
		return err
	}
	SetLogger(logger)
	return nil
}

// SetLogger replaces the global logger
func SetLogger(logger *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = logger
	sugar = logger.Sugar()
}

// L returns the underlying zap logger
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

func s() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// SetLevel changes the minimum level of the global logger
func SetLevel(l Level) {
	level.SetLevel(l)
}

// ParseLevel maps a config string to a level, defaulting to info
func ParseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// With returns a child logger carrying the given key/value pairs
func With(keysAndValues ...any) *zap.SugaredLogger {
	return s().With(keysAndValues...)
}

func Debug(args ...any)                 { s().Debug(args...) }
func Debugf(format string, args ...any) { s().Debugf(format, args...) }
func Info(args ...any)                  { s().Info(args...) }
func Infof(format string, args ...any)  { s().Infof(format, args...) }
func Warn(args ...any)                  { s().Warn(args...) }
func Warnf(format string, args ...any)  { s().Warnf(format, args...) }
func Error(args ...any)                 { s().Error(args...) }
func Errorf(format string, args ...any) { s().Errorf(format, args...) }
func Fatal(args ...any)                 { s().Fatal(args...) }
func Fatalf(format string, args ...any) { s().Fatalf(format, args...) }

// Sync flushes buffered entries
func Sync() {
	_ = L().Sync()
}

// TruncateForLog shortens s to limit runes, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

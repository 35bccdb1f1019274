// Package zlog holds the process logger used by the library packages.
//
// The level is read from GO_LOG (debug, info, warn, error) when the package is
// loaded; it defaults to info. Host applications may route library logs into
// their own zap logger with ReplaceLogger.
package zlog

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(newLogger(os.Getenv("GO_LOG")))
}

func newLogger(lvlStr string) *zap.Logger {
	lvl := zap.InfoLevel
	var parseErr error
	if lvlStr != "" {
		parsedLvl, err := zapcore.ParseLevel(lvlStr)
		if err != nil {
			parseErr = err
		} else {
			lvl = parsedLvl
		}
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	if parseErr != nil {
		l.Warn("parse GO_LOG, falling back to info", zap.Error(parseErr))
	}
	return l
}

// ReplaceLogger swaps the process logger and returns a func restoring the
// previous one. A nil logger discards everything.
func ReplaceLogger(l *zap.Logger) (restore func()) {
	if l == nil {
		l = zap.NewNop()
	}
	prev := logger.Swap(l)
	return func() { logger.Store(prev) }
}

// Named returns a child of the current logger for one component.
func Named(name string) *zap.Logger {
	return logger.Load().Named(name)
}

func Debug(msg string, fields ...zap.Field) {
	logger.Load().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Load().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Load().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Load().Error(msg, fields...)
}

func Sync() error {
	return logger.Load().Sync()
}

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger. It discards everything until Init is called.
var Log = zap.NewNop()

// Init replaces Log with a development logger writing to stderr.
func Init() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		// Keep the no-op logger, there is nowhere to report this
		return
	}
	Log = l
}

// SetLogger swaps the shared logger and returns the previous one.
func SetLogger(l *zap.Logger) *zap.Logger {
	prev := Log
	if l == nil {
		l = zap.NewNop()
	}
	Log = l
	return prev
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}

package logger

import (
	"io"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used by the library.
type Logger interface {
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Debug(msg string, obj any)
	Error(msg string, obj any)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Debug(string, any) {}
func (NopLogger) Error(string, any) {}

type zapLogger struct {
	l *zap.Logger
}

// NewWriterLogger builds a console logger that writes to w. Debug entries
// are dropped unless debug is set.
func NewWriterLogger(w io.Writer, debug bool) Logger {
	if w == nil {
		return NopLogger{}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
	return zapLogger{l: zap.New(core)}
}

func (z zapLogger) Info(msg string, obj any)  { z.l.Info(msg, fields(obj)...) }
func (z zapLogger) Warn(msg string, obj any)  { z.l.Warn(msg, fields(obj)...) }
func (z zapLogger) Debug(msg string, obj any) { z.l.Debug(msg, fields(obj)...) }
func (z zapLogger) Error(msg string, obj any) { z.l.Error(msg, fields(obj)...) }

// fields flattens map payloads into individual zap fields, sorted by key.
func fields(obj any) []zap.Field {
	switch v := obj.(type) {
	case nil:
		return nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]zap.Field, 0, len(keys))
		for _, k := range keys {
			out = append(out, zap.Any(k, v[k]))
		}
		return out
	case error:
		return []zap.Field{zap.Error(v)}
	default:
		return []zap.Field{zap.Any("obj", v)}
	}
}

// Debug writes a debug log when enabled and logger is non-nil.
func Debug(enabled bool, logger Logger, msg string, obj any) {
	if !enabled || logger == nil {
		return
	}
	logger.Debug(msg, obj)
}

// Warn writes a warning log when logger is non-nil.
func Warn(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, obj)
}

// Error writes an error log when logger is non-nil.
func Error(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Error(msg, obj)
}

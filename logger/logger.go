// Package logger provides the prefixed, colored console logger shared by the
// application's components.
package logger

import (
	"errors"
	"io"

	"github.com/beka-birhanu/frontier-maze/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes leveled, structured log lines under a colored prefix.
type Logger struct {
	sugar *zap.SugaredLogger
}

// Option configures a Logger.
type Option func(*options)

type options struct {
	level zapcore.Level
}

// WithLevel sets the minimum level. Unknown names fall back to info.
func WithLevel(level string) Option {
	return func(o *options) {
		l, err := zapcore.ParseLevel(level)
		if err != nil {
			l = zapcore.InfoLevel
		}
		o.level = l
	}
}

// New creates a logger that writes to w, naming every line with prefix
// rendered in color.
func New(prefix, color string, w io.Writer, opts ...Option) (*Logger, error) {
	if w == nil {
		return nil, errors.New("logger writer is nil")
	}

	o := &options{level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(o)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), o.level)
	name := prefix
	if color != "" {
		name = color + prefix + config.ColorReset
	}

	return &Logger{sugar: zap.New(core).Named(name).Sugar()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Debug logs msg with alternating key/value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info logs msg with alternating key/value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn logs msg with alternating key/value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error logs msg with alternating key/value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

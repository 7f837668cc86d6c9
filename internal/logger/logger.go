// Package logger provides structured logging for primesieve using zap.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dbsmedya/primesieve/internal/config"
)

// Logger wraps zap.SugaredLogger with sieve-specific context helpers.
type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger
}

// New creates a Logger from the logging section of the configuration.
func New(cfg *config.LoggingConfig) (*Logger, error) {
	core := zapcore.NewCore(
		buildEncoder(cfg.Format),
		buildWriters(cfg.Output),
		zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
	)
	return fromCore(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// NewDefault creates a Logger at info level writing text to stderr.
func NewDefault() *Logger {
	l, _ := New(&config.LoggingConfig{Level: "info", Format: "text", Output: "stderr"})
	return l
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return fromCore(zapcore.NewNopCore())
}

func fromCore(core zapcore.Core, opts ...zap.Option) *Logger {
	base := zap.New(core, opts...).Named("primesieve")
	return &Logger{SugaredLogger: base.Sugar(), base: base}
}

// parseLevel maps a config level onto zap. Unknown levels log at info.
func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl < zapcore.DebugLevel || lvl > zapcore.ErrorLevel {
		return zapcore.InfoLevel
	}
	return lvl
}

func buildEncoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

// buildWriters resolves the output target. Query results go to stdout,
// so a log file is mirrored to stderr rather than stdout.
func buildWriters(output string) zapcore.WriteSyncer {
	switch output {
	case "stderr", "":
		return zapcore.Lock(os.Stderr)
	case "stdout":
		return zapcore.Lock(os.Stdout)
	}

	file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.NewMultiWriteSyncer(zapcore.AddSync(file), zapcore.Lock(os.Stderr))
}

func (l *Logger) with(args ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...), base: l.base}
}

// WithLimit tags entries with the sieve limit they were produced under.
func (l *Logger) WithLimit(limit uint64) *Logger {
	return l.with("limit", limit)
}

// WithQuery tags entries with the query operation and its argument.
func (l *Logger) WithQuery(op string, n uint64) *Logger {
	return l.with("op", op, "n", n)
}

// WithWorker tags entries with a verification worker id.
func (l *Logger) WithWorker(id int) *Logger {
	return l.with("worker", id)
}

// WithFields returns a Logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return l.with(args...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

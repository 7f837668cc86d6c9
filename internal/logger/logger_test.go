package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dbsmedya/primesieve/internal/config"
)

func observed(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return fromCore(core), logs
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.InfoLevel},
		{"unknown", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		cfg  *config.LoggingConfig
	}{
		{"json to stdout", &config.LoggingConfig{Level: "info", Format: "json", Output: "stdout"}},
		{"text to stderr", &config.LoggingConfig{Level: "debug", Format: "text", Output: "stderr"}},
		{"json to file", &config.LoggingConfig{Level: "warn", Format: "json", Output: filepath.Join(dir, "sieve.log")}},
		{"empty output", &config.LoggingConfig{Level: "error", Format: "text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)
			_ = l.Sync()
		})
	}
}

func TestNewDefault(t *testing.T) {
	l := NewDefault()
	require.NotNil(t, l)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	require.NotNil(t, l)
	l.Debugw("dropped", "n", 1)
	assert.NoError(t, l.Sync())
}

func TestContextFields(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)

	l.WithLimit(1000).Debug("grown")
	l.WithQuery("factorise", 360).Info("answered")
	l.WithWorker(3).Warn("chunk failed")
	l.WithFields(map[string]interface{}{"from": uint64(2), "to": uint64(100)}).Info("starting")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, uint64(1000), entries[0].ContextMap()["limit"])
	assert.Equal(t, "factorise", entries[1].ContextMap()["op"])
	assert.Equal(t, uint64(360), entries[1].ContextMap()["n"])
	assert.Equal(t, int64(3), entries[2].ContextMap()["worker"])
	assert.Equal(t, uint64(2), entries[3].ContextMap()["from"])
	assert.Equal(t, uint64(100), entries[3].ContextMap()["to"])
	assert.Equal(t, "primesieve", entries[0].LoggerName)
}

func TestChaining(t *testing.T) {
	l, logs := observed(zapcore.InfoLevel)

	child := l.WithLimit(100).WithWorker(5).WithQuery("order", 7)
	assert.NotSame(t, l, child)
	child.Info("chained")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, uint64(100), fields["limit"])
	assert.Equal(t, int64(5), fields["worker"])
	assert.Equal(t, "order", fields["op"])

	// parent is untouched
	l.Info("plain")
	assert.Empty(t, logs.All()[1].Context)
}

func TestLevelFiltering(t *testing.T) {
	l, logs := observed(zapcore.WarnLevel)
	l.Debug("no")
	l.Info("no")
	l.Warn("yes")
	assert.Equal(t, 1, logs.FilterMessage("yes").Len())
	assert.Equal(t, 1, logs.Len())
}

func TestBuildEncoder(t *testing.T) {
	for _, format := range []string{"json", "text", "unknown"} {
		assert.NotNil(t, buildEncoder(format), format)
	}
}

func TestBuildWriters(t *testing.T) {
	for _, output := range []string{"stdout", "stderr", ""} {
		assert.NotNil(t, buildWriters(output), output)
	}

	path := filepath.Join(t.TempDir(), "out.log")
	assert.NotNil(t, buildWriters(path))
	_, err := os.Stat(path)
	assert.NoError(t, err)

	// unwritable path falls back to stderr
	assert.NotNil(t, buildWriters(filepath.Join(t.TempDir(), "missing", "out.log")))
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sieve.json")

	l, err := New(&config.LoggingConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	l.Info("first message")
	l.Debug("filtered message")
	l.WithQuery("isprime", 982451653).Warn("query message")
	_ = l.Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), "first message")
	assert.Contains(t, string(content), "query message")
	assert.Contains(t, string(content), "982451653")
	assert.NotContains(t, string(content), "filtered message")
}

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, cfg Config) (*filteringHandler, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg.process()
	base := slog.NewTextHandler(&out, &slog.HandlerOptions{Level: cfg.level})
	return newFilteringHandler(base, &cfg), &out
}

// record builds a record whose source is this test file.
func record(msg, tag string) slog.Record {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	r := slog.NewRecord(time.Now(), slog.LevelInfo, msg, pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	return r
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestFilterByTag(t *testing.T) {
	h, out := newTestHandler(t, Config{LogLevel: "debug", EnabledTags: []string{"Render"}})
	ctx := context.Background()

	require.NoError(t, h.Handle(ctx, record("kept", "render")))
	require.NoError(t, h.Handle(ctx, record("other tag", "dispatch")))
	require.NoError(t, h.Handle(ctx, record("untagged", "")))

	assert.Contains(t, out.String(), "kept")
	assert.NotContains(t, out.String(), "other tag")
	assert.NotContains(t, out.String(), "untagged")
}

func TestDisabledTagWins(t *testing.T) {
	h, out := newTestHandler(t, Config{
		LogLevel:     "debug",
		EnabledTags:  []string{"render"},
		DisabledTags: []string{"render"},
	})
	require.NoError(t, h.Handle(context.Background(), record("dropped", "render")))
	assert.Empty(t, out.String())
}

func TestUntaggedPassesWithoutLists(t *testing.T) {
	h, out := newTestHandler(t, NewConfig())
	require.NoError(t, h.Handle(context.Background(), record("plain", "")))
	assert.Contains(t, out.String(), "plain")
}

func TestFilterByPackageAndFile(t *testing.T) {
	h, out := newTestHandler(t, Config{LogLevel: "debug", DisabledPackages: []string{"logger"}})
	require.NoError(t, h.Handle(context.Background(), record("from logger", "")))
	assert.Empty(t, out.String())

	h, out = newTestHandler(t, Config{LogLevel: "debug", EnabledFiles: []string{"logger_test.go"}})
	require.NoError(t, h.Handle(context.Background(), record("from test file", "")))
	assert.Contains(t, out.String(), "from test file")
}

func TestHelpersNeverPanicBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Debugf("debug %d", 1)
		DebugTagf("tag", "tagged %s", "x")
		Infof("info")
		Warnf("warn")
		Errorf("error")
	})
	assert.NotNil(t, Get())
}

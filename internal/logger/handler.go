package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag"

// filteringHandler wraps a base slog.Handler and drops records by tag, package or file.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{baseHandler: base, cfg: cfg}
}

// Enabled defers to the base handler's level.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// allowed applies the disable-then-enable rule to one key.
// Disabled wins; an enable list, when present, must contain the key.
func allowed(enabled, disabled map[string]struct{}, key string) bool {
	if key == "" {
		return true
	}
	key = strings.ToLower(key)
	if _, found := disabled[key]; found {
		return false
	}
	if enabled != nil {
		_, found := enabled[key]
		return found
	}
	return true
}

// Handle applies filtering before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	var pkg, file string
	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			file = filepath.Base(frame.File)
			pkg = filepath.Base(filepath.Dir(frame.File))
		}
	}
	if !allowed(h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet, pkg) {
		return nil
	}
	if !allowed(h.cfg.enabledFilesSet, h.cfg.disabledFilesSet, file) {
		return nil
	}

	var tag string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = a.Value.String()
			return false
		}
		return true
	})
	if tag == "" {
		// Untagged records are dropped only when specific tags were requested.
		if h.cfg.enabledTagsSet != nil {
			return nil
		}
	} else if !allowed(h.cfg.enabledTagsSet, h.cfg.disabledTagsSet, tag) {
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}

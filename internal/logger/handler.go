package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // attribute key used for tag filtering

// filteringHandler wraps a base slog.Handler and drops records by tag or
// originating package.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func foundInSet(set map[string]struct{}, key string) bool {
	if set == nil {
		return false
	}
	_, found := set[key]
	return found
}

// recordPackage returns the directory name of the file that produced r.
func recordPackage(r slog.Record) string {
	if r.PC == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return strings.ToLower(filepath.Base(filepath.Dir(frame.File)))
}

func recordTag(r slog.Record) (string, bool) {
	var tag string
	var found bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			found = true
			return false
		}
		return true
	})
	return tag, found
}

// Handle applies package and tag filters before passing r on.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.base.Handle(ctx, r)
	}

	if pkg := recordPackage(r); pkg != "" && foundInSet(h.cfg.disabledPackagesSet, pkg) {
		return nil
	}

	tag, tagged := recordTag(r)
	switch {
	case tagged && foundInSet(h.cfg.disabledTagsSet, tag):
		return nil
	case h.cfg.enabledTagsSet != nil && tagged && !foundInSet(h.cfg.enabledTagsSet, tag):
		return nil
	}

	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.base.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.base.WithGroup(name), h.cfg)
}

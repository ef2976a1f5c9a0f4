// Package slogx provides [slog.Handler] implementations used for verification failure logging.
package slogx

import (
	"context"
	"log/slog"
	"slices"
)

var _ slog.Handler = (*DedupeHandler)(nil)

// DedupeHandler wraps another handler and guarantees that each fully qualified attribute key is emitted once.
// Later values for a key replace earlier ones, including attributes added directly to a record.
// This lets caller-supplied context share a logger with fixed attributes without producing repeated keys.
type DedupeHandler struct {
	group string
	attrs []slog.Attr
	impl  slog.Handler
}

// NewDedupeHandler creates a [DedupeHandler] over impl, which must not be nil.
func NewDedupeHandler(impl slog.Handler) slog.Handler {
	if impl == nil {
		panic("nil implementing handler")
	}
	return &DedupeHandler{
		impl: impl,
	}
}

func (s *DedupeHandler) qualify(key string) string {
	if len(s.group) == 0 {
		return key
	}
	return s.group + "." + key
}

func (s *DedupeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return s.impl.Enabled(ctx, level)
}

func (s *DedupeHandler) Handle(ctx context.Context, record slog.Record) error {
	h := s
	if record.NumAttrs() > 0 {
		extra := make([]slog.Attr, 0, record.NumAttrs())
		record.Attrs(func(attr slog.Attr) bool {
			extra = append(extra, attr)
			return true
		})
		record = slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
		h = s.merge(extra)
	}
	return h.impl.WithAttrs(h.attrs).Handle(ctx, record)
}

func (s *DedupeHandler) merge(attrs []slog.Attr) *DedupeHandler {
	cp := &DedupeHandler{
		group: s.group,
		attrs: slices.Clone(s.attrs),
		impl:  s.impl,
	}
	for _, attr := range attrs {
		attr.Key = cp.qualify(attr.Key)
		idx := slices.IndexFunc(cp.attrs, func(existing slog.Attr) bool {
			return existing.Key == attr.Key
		})
		if idx >= 0 {
			cp.attrs[idx] = attr
			continue
		}
		cp.attrs = append(cp.attrs, attr)
	}
	return cp
}

func (s *DedupeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	return s.merge(attrs)
}

func (s *DedupeHandler) WithGroup(name string) slog.Handler {
	if len(name) == 0 {
		return s
	}
	return &DedupeHandler{
		group: s.qualify(name),
		attrs: s.attrs,
		impl:  s.impl,
	}
}

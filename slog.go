package logger

import (
	"context"
	"log/slog"
)

// NewSlogHandler returns a slog.Handler that routes records through the
// registry's sinks and formatter, so slog-based code in the same process
// shares the configured destinations, level filter and extra fields.
// Attributes become per-call extra fields; groups prefix attribute keys.
func NewSlogHandler(name string) slog.Handler {
	return &slogHandler{name: name}
}

type slogHandler struct {
	name   string
	fields Fields
	prefix string
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return activeSinks.Load() != nil && int64(level) >= logLevel.Load()
}

func (h *slogHandler) Handle(_ context.Context, record slog.Record) error {
	set := activeSinks.Load()
	if set == nil {
		return nil
	}

	fields := h.fields
	record.Attrs(func(attr slog.Attr) bool {
		// Full slice expression keeps bound fields immutable across handles.
		fields = append(fields[:len(fields):len(fields)], Field{
			Key:   h.prefix + attr.Key,
			Value: attr.Value.String(),
		})
		return true
	})

	emit(set, int64(record.Level), h.name, record.Message, fields)
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	fields := h.fields[:len(h.fields):len(h.fields)]
	for _, attr := range attrs {
		fields = append(fields, Field{Key: h.prefix + attr.Key, Value: attr.Value.String()})
	}
	return &slogHandler{name: h.name, fields: fields, prefix: h.prefix}
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &slogHandler{name: h.name, fields: h.fields, prefix: h.prefix + name + "."}
}

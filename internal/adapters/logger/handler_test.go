package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/importcache/internal/adapters/logger"
)

func newHandler(t *testing.T, level slog.Level) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newHandler(t, slog.LevelInfo)
			slog.New(handler).Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_DebugFiltered(t *testing.T) {
	handler, buf := newHandler(t, slog.LevelInfo)
	slog.New(handler).Debug("debug message")

	assert.Empty(t, buf.String())
}

func TestPrettyHandler_DynamicLevel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: level})

	assert.False(t, handler.Enabled(t.Context(), slog.LevelDebug))
	level.Set(slog.LevelDebug)
	assert.True(t, handler.Enabled(t.Context(), slog.LevelDebug))
}

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name       string
		attrs      []slog.Attr
		goldenName string
	}{
		{
			name:       "multiple attributes",
			attrs:      []slog.Attr{slog.String("module", "numpy"), slog.Int("depth", 2)},
			goldenName: "handler_attrs_multi",
		},
		{
			name:       "group attribute",
			attrs:      []slog.Attr{slog.Group("item", slog.String("path", "pandas.NA"))},
			goldenName: "handler_attrs_group",
		},
		{
			name:       "empty value",
			attrs:      []slog.Attr{slog.String("empty", "")},
			goldenName: "handler_attrs_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, buf := newHandler(t, slog.LevelInfo)
			slog.New(handler.WithAttrs(tt.attrs)).Info("attrs message")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	handler, buf := newHandler(t, slog.LevelInfo)

	var h slog.Handler = handler
	h = h.WithAttrs([]slog.Attr{slog.String("session", "s1")})
	h = h.WithGroup("cache")
	h = h.WithGroup("")
	h = h.WithGroup("item")
	slog.New(h).Info("nested group message", "path", "datetime.date")

	g := goldie.New(t)
	g.Assert(t, "handler_group_nested", buf.Bytes())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		recordLevel  slog.Level
		wantEnabled  bool
	}{
		{name: "debug below info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelDebug, wantEnabled: false},
		{name: "info at info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelInfo, wantEnabled: true},
		{name: "error above info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelError, wantEnabled: true},
		{name: "warn at error", handlerLevel: slog.LevelError, recordLevel: slog.LevelWarn, wantEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: tt.handlerLevel})
			assert.Equal(t, tt.wantEnabled, handler.Enabled(t.Context(), tt.recordLevel))
		})
	}
}

package logger

import (
	"bytes"
	"context"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := NewLogger(TestConfig())
		ctx := ContextWithLogger(t.Context(), expected)

		actual := FromContext(ctx)

		require.NotNil(t, actual)
		assert.Equal(t, expected, actual)
	})

	t.Run("Should return default logger when no logger in context", func(t *testing.T) {
		l := FromContext(t.Context())
		require.NotNil(t, l)
		assert.Equal(t, GetDefault(), l)
	})

	t.Run("Should return default logger when wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(t.Context(), LoggerCtxKey, "not a logger")
		assert.Equal(t, GetDefault(), FromContext(ctx))
	})

	t.Run("Should return default logger for nil context", func(t *testing.T) {
		//nolint:staticcheck // nil context is the case under test
		assert.NotNil(t, FromContext(nil))
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DebugLevel,
		" WARN ":  WarnLevel,
		"error":   ErrorLevel,
		"info":    InfoLevel,
		"verbose": InfoLevel,
		"":        InfoLevel,
	}
	for in, want := range cases {
		t.Run("Should parse "+in, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(in))
		})
	}
}

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	t.Run("Should convert all log levels to charm log levels correctly", func(t *testing.T) {
		assert.Equal(t, charmlog.DebugLevel, DebugLevel.ToCharmlogLevel())
		assert.Equal(t, charmlog.InfoLevel, InfoLevel.ToCharmlogLevel())
		assert.Equal(t, charmlog.WarnLevel, WarnLevel.ToCharmlogLevel())
		assert.Equal(t, charmlog.ErrorLevel, ErrorLevel.ToCharmlogLevel())
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Should write JSON lines when configured", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true, TimeFormat: "15:04:05"})

		l.With("path", "/card").Info("served", "code", 200)

		out := buf.String()
		assert.Contains(t, out, `"msg":"served"`)
		assert.Contains(t, out, `"path":"/card"`)
	})

	t.Run("Should filter below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: WarnLevel, Output: &buf})

		l.Info("hidden")
		l.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}

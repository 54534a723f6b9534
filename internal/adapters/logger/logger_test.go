package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewWithWriter(buf), buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		args       []any
		goldenName string
	}{
		{name: "simple message", msg: "Resource up to date! (data://a.tex)", goldenName: "info_basic"},
		{name: "with attributes", msg: "compiled", args: []any{"resource", "data://a.tex", "worker", 2}, goldenName: "info_attrs"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg, tt.args...)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("dependency cycle detected", "resource", "data://a.mtl")

	assert.Equal(t, "! dependency cycle detected resource=data://a.mtl\n", buf.String())
}

func TestLogger_Debug(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetVerbose(true)
	lg.Debug("shown")
	assert.Equal(t, "● shown\n", buf.String())

	lg.SetVerbose(false)
	lg.Debug("hidden again")
	assert.Equal(t, "● shown\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	t.Run("nil error is ignored", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(nil)
		assert.Empty(t, buf.String())
	})

	t.Run("zerr chain", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		err := zerr.Wrap(errors.New("permission denied"), "failed to write compiled resource record")
		lg.Error(err)

		g := goldie.New(t)
		g.Assert(t, "error_chain", buf.Bytes())
	})
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello", "client", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.InDelta(t, 3, entry["client"], 0)
}

func TestLogger_SetOutputPreservesJSON(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	other := &bytes.Buffer{}
	lg.SetOutput(other)
	lg.Error(errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(other.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
}

func TestLogger_AttributeFormatting(t *testing.T) {
	t.Run("values with spaces are quoted", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Warn("file watching disabled", "root", "/srv/raw data", "reason", "")

		assert.Equal(t, "! file watching disabled root=\"/srv/raw data\" reason=\"\"\n", buf.String())
	})

	t.Run("multi-line values become blocks", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Info("compile failed", "resource", "data://a.tex", "log", "Error: bad input\nline 2\n")

		assert.Equal(t,
			"compile failed resource=data://a.tex\n"+
				"  log:\n"+
				"    Error: bad input\n"+
				"    line 2\n",
			buf.String())
	})
}

func TestPrettyHandler_GroupsAndAttrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	h := logger.NewPrettyHandler(buf, nil).
		WithAttrs([]slog.Attr{slog.Int("client", 3)}).
		WithGroup("request").
		WithAttrs([]slog.Attr{slog.String("origin", "External")})

	slog.New(h).Info("completed", "status", "Succeeded", slog.Group("timing", slog.Int("ms", 12)))

	assert.Equal(t,
		"completed client=3 request.origin=External request.status=Succeeded request.timing.ms=12\n",
		buf.String())
}

package spline

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_SilentByDefault(t *testing.T) {
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestSetLogger_ReceivesRebuilds(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	p := newTestPlotter(t)
	p.TogglePoint(ControlPoint{X: 10, Y: 10})
	p.TogglePoint(ControlPoint{X: 100, Y: 10})

	out := buf.String()
	assert.Contains(t, out, "spline rebuilt")
	assert.Contains(t, out, "change=inserted")
	assert.Contains(t, out, "segments=1")
}

func TestSetLogger_NilRestoresSilence(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

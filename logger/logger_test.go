package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/frontier-maze/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("APP", "", &buf)
	require.NoError(t, err)

	l.Info("maze generated", "size", 30)
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "APP")
	assert.Contains(t, out, "maze generated")
	assert.Contains(t, out, `"size": 30`)
	assert.NotContains(t, out, "hidden")
}

func TestWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("APP", "", &buf, WithLevel("error"))
	require.NoError(t, err)

	l.Warn("quiet")
	l.Error("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewNilWriter(t *testing.T) {
	_, err := New("APP", "", nil)
	assert.Error(t, err)
}

func TestColoredPrefix(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("MAZE", config.ColorCyan, &buf)
	require.NoError(t, err)

	l.Info("ready")
	assert.Contains(t, buf.String(), config.ColorCyan+"MAZE"+config.ColorReset)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultHostIP, cfg.HostIP)
	assert.Equal(t, defaultRESTPort, cfg.RESTPort)
	assert.Equal(t, defaultMazeSize, cfg.DefaultMazeSize)
	assert.Equal(t, defaultMaxMazeSize, cfg.MaxMazeSize)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REST_PORT", "9090")
	t.Setenv("MAZE_DEFAULT_SIZE", "12")
	t.Setenv("MAZE_MAX_SIZE", "40")
	t.Setenv("JWT_TTL", "15m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.RESTPort)
	assert.Equal(t, 12, cfg.DefaultMazeSize)
	assert.Equal(t, 40, cfg.MaxMazeSize)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("non integer port", func(t *testing.T) {
		t.Setenv("REST_PORT", "eighty")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non positive size", func(t *testing.T) {
		t.Setenv("MAZE_DEFAULT_SIZE", "0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("max below default", func(t *testing.T) {
		t.Setenv("MAZE_DEFAULT_SIZE", "50")
		t.Setenv("MAZE_MAX_SIZE", "10")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidateServer(t *testing.T) {
	err := Config{}.ValidateServer()
	assert.ErrorIs(t, err, ErrMissingEnv)

	err = Config{JWTSecret: "s", ClientID: "c", ClientSecretHash: "h"}.ValidateServer()
	assert.NoError(t, err)
}

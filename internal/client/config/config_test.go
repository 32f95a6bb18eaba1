package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg, err := LoadConfig(nil)

	require.NoError(t, err)
	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_EnvThenFlags(t *testing.T) {
	t.Setenv("AUDITKEEPER_SERVER_ADDR", "env:1")
	t.Setenv("AUDITKEEPER_REQUEST_TIMEOUT", "2s")

	cfg, err := LoadConfig([]string{"-i", "7"})
	require.NoError(t, err)
	assert.Equal(t, "env:1", cfg.ServerEndpointAddr)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 7*time.Second, cfg.OnlineCheckInterval)

	cfg, err = LoadConfig([]string{"-a", "flag:2"})
	require.NoError(t, err)
	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
}

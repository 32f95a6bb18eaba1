package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, ":8000", c.EndpointAddrHTTP)
	assert.Equal(t, "", c.DatabaseDSN)
	assert.Equal(t, "", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, bcrypt.DefaultCost, c.BcryptCost)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_DefaultsAndGeneratedSecret(t *testing.T) {
	c, err := LoadConfig(nil)
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, 30*time.Minute, c.AccessTokenValidityDuration)
	assert.True(t, c.SecretGenerated)
	assert.Len(t, c.SecretKey, 64)

	other, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.NotEqual(t, c.SecretKey, other.SecretKey)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_grpc": "json:1",
		"database_dsn":       "json-dsn",
		"secret_key":         "json-secret",
		"log_level":          "debug",
	})
	t.Setenv("AUDITKEEPER_DATABASE_DSN", "env-dsn")
	t.Setenv("AUDITKEEPER_SECRET_KEY", "env-secret")

	c, err := LoadConfig([]string{"-c", path, "-s", "flag-secret"})
	require.NoError(t, err)

	assert.Equal(t, "json:1", c.EndpointAddrGRPC, "json over defaults")
	assert.Equal(t, "env-dsn", c.DatabaseDSN, "env over json")
	assert.Equal(t, "flag-secret", c.SecretKey, "flags over env")
	assert.Equal(t, "debug", c.LogLevel)
	assert.False(t, c.SecretGenerated)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig([]string{"-c", "/does/not/exist.json"})
	require.Error(t, err)

	t.Setenv("AUDITKEEPER_BCRYPT_COST", "many")
	_, err = LoadConfig(nil)
	require.Error(t, err)
}

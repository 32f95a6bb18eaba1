package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/logging"
	"github.com/dmitrijs2005/auditkeeper/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		EndpointAddrGRPC:            "127.0.0.1:0",
		EndpointAddrHTTP:            "127.0.0.1:0",
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: 30 * time.Minute,
		BcryptCost:                  bcrypt.MinCost,
		LogLevel:                    "info",
	}
}

func TestNewApp_InMemory(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)
	assert.NotNil(t, app.authService)
	assert.NotNil(t, app.auditService)
}

func TestNewApp_EmptySecret(t *testing.T) {
	c := testConfig()
	c.SecretKey = ""

	_, err := NewApp(context.Background(), c, logging.Nop{})
	require.Error(t, err)
}

func TestNewApp_UnreachableDatabase(t *testing.T) {
	c := testConfig()
	c.DatabaseDSN = "postgres://u:p@127.0.0.1:1/auditkeeper?sslmode=disable&connect_timeout=1"

	_, err := NewApp(context.Background(), c, logging.Nop{})
	require.Error(t, err)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(150 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after context cancel")
	}
}

func TestRun_EndpointFailureStopsApp(t *testing.T) {
	c := testConfig()
	c.EndpointAddrHTTP = "127.0.0.1:99999"

	app, err := NewApp(context.Background(), c, logging.Nop{})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http")
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after endpoint failure")
	}
}

// Package config handles configuration for the server component: defaults,
// an optional JSON file, environment variables and command-line flags,
// applied in that order.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/shared"
	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the auditkeeper server.
//
// Fields:
//   - EndpointAddrGRPC / EndpointAddrHTTP: bind addresses of the two transports.
//     An empty HTTP address disables the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing tokens (HS256). A random one is
//     generated when left empty, which invalidates tokens on every restart.
//   - AccessTokenValidityDuration: lifetime of issued tokens.
//   - BcryptCost: work factor for password hashes.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC            string        `env:"GRPC_ADDR"`
	EndpointAddrHTTP            string        `env:"HTTP_ADDR"`
	DatabaseDSN                 string        `env:"DATABASE_DSN"`
	SecretKey                   string        `env:"SECRET_KEY"`
	AccessTokenValidityDuration time.Duration `env:"ACCESS_TOKEN_TTL"`
	BcryptCost                  int           `env:"BCRYPT_COST"`
	LogLevel                    string        `env:"LOG_LEVEL"`

	// SecretGenerated reports that SecretKey was not configured and has been
	// filled with random bytes.
	SecretGenerated bool `env:"-"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8000"
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.BcryptCost = bcrypt.DefaultCost
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then overlays the JSON file
// named by -c/-config, then AUDITKEEPER_* environment variables and finally
// the flags in args (without the program name).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	if err := cfg.ensureSecret(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) ensureSecret() error {
	if c.SecretKey != "" {
		return nil
	}
	secret, err := shared.MakeRandHexString(32)
	if err != nil {
		return fmt.Errorf("generate secret key: %w", err)
	}
	c.SecretKey = secret
	c.SecretGenerated = true
	return nil
}

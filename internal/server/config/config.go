// Package config handles configuration for the API server,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the API server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public REST endpoint.
//   - EndpointAddrGRPC: bind address for the gRPC health endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the local SQLite file.
//   - SQLitePath: file used when no DSN is configured.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration: lifetime of tokens issued by /login.
//   - DefaultUserID / RequireAuth: identity used for requests without a token,
//     and whether such requests are rejected instead.
//   - RateLimit*: per-client token bucket applied to every request.
type Config struct {
	EndpointAddrHTTP            string        `env:"ADDRESS"`
	EndpointAddrGRPC            string        `env:"GRPC_ADDRESS"`
	DatabaseDSN                 string        `env:"DATABASE_URL"`
	SQLitePath                  string        `env:"SQLITE_PATH"`
	SecretKey                   string        `env:"SECRET_KEY"`
	AccessTokenValidityDuration time.Duration `env:"ACCESS_TOKEN_TTL"`
	DefaultUserID               int64         `env:"DEFAULT_USER_ID"`
	RequireAuth                 bool          `env:"REQUIRE_AUTH"`
	RateLimitEnabled            bool          `env:"LIMITER_ENABLED"`
	RateLimitRPS                float64       `env:"LIMITER_RPS"`
	RateLimitBurst              int           `env:"LIMITER_BURST"`
	ShutdownTimeout             time.Duration `env:"SHUTDOWN_TIMEOUT"`
	LogLevel                    string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey is insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SQLitePath = "/tmp/starwars.db"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.DefaultUserID = 1
	c.RequireAuth = false
	c.RateLimitEnabled = true
	c.RateLimitRPS = 20
	c.RateLimitBurst = 40
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg, environ())
	parseFlags(cfg, os.Args[1:])
	return cfg
}

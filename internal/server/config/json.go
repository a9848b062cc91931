package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/starwars/internal/flagx"
	"github.com/dmitrijs2005/starwars/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept both "1m" strings and integer nanoseconds. Absent keys leave the
// current value untouched.
type JsonConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SQLitePath                  string         `json:"sqlite_path"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	DefaultUserID               int64          `json:"default_user_id"`
	RequireAuth                 *bool          `json:"require_auth"`
	RateLimitEnabled            *bool          `json:"limiter_enabled"`
	RateLimitRPS                float64        `json:"limiter_rps"`
	RateLimitBurst              int            `json:"limiter_burst"`
	ShutdownTimeout             timex.Duration `json:"shutdown_timeout"`
	LogLevel                    string         `json:"log_level"`
}

// parseJson loads the file named by -c / -config (if any) into config.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.ConfigFileFlag(args)

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SQLitePath, c.SQLitePath)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.DefaultUserID > 0 {
		config.DefaultUserID = c.DefaultUserID
	}
	if c.RequireAuth != nil {
		config.RequireAuth = *c.RequireAuth
	}
	if c.RateLimitEnabled != nil {
		config.RateLimitEnabled = *c.RateLimitEnabled
	}
	if c.RateLimitRPS > 0 {
		config.RateLimitRPS = c.RateLimitRPS
	}
	if c.RateLimitBurst > 0 {
		config.RateLimitBurst = c.RateLimitBurst
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

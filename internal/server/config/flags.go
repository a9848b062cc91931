package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/starwars/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   REST bind address (e.g., ":3000")
//	-g string   gRPC health bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-f string   SQLite file used when no DSN is set
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-u int      implicit user id for requests without a token
//	-r          reject requests without a token
//	-l float    rate limit, requests per second per client (0 disables)
//
// Args are filtered with flagx.FilterArgs first so that -c/-config and
// test-runner flags never reach this flag set.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-d", "-f", "-s", "-t", "-u", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run REST server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to run gRPC health server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SQLitePath, "f", config.SQLitePath, "sqlite file path")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.Int64Var(&config.DefaultUserID, "u", config.DefaultUserID, "implicit user id")
	fs.BoolVar(&config.RequireAuth, "r", config.RequireAuth, "require bearer token")

	rps := fs.Float64("l", config.RateLimitRPS, "rate limit (requests per second, 0 disables)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute

	config.RateLimitRPS = *rps
	if *rps <= 0 {
		config.RateLimitEnabled = false
	}
}

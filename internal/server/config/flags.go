package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/commpro-auth/internal/flagx"
)

// parseFlags overlays the most frequently overridden settings from
// command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-h string   HTTP bind address (e.g. ":3001")
//	-d string   database DSN (postgres:// or sqlite:)
//	-s string   access token secret
//	-S string   refresh token secret
//	-t string   access token lifetime ("15m")
//	-r string   refresh token lifetime ("7d")
//	-R string   redis address, empty disables the attempt limiter
//	-l string   log format: json, text or zap
//	-e string   environment name
//
// os.Args is filtered through flagx.FilterArgs first so unrelated flags
// (for example -c) do not abort parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-h", "-d", "-s", "-S", "-t", "-r", "-R", "-l", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "h", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.AccessTokenSecret, "s", config.AccessTokenSecret, "access token secret")
	fs.StringVar(&config.RefreshTokenSecret, "S", config.RefreshTokenSecret, "refresh token secret")
	fs.StringVar(&config.AccessTokenLifetime, "t", config.AccessTokenLifetime, "access token lifetime")
	fs.StringVar(&config.RefreshTokenLifetime, "r", config.RefreshTokenLifetime, "refresh token lifetime")
	fs.StringVar(&config.RedisAddr, "R", config.RedisAddr, "redis address")
	fs.StringVar(&config.LogFormat, "l", config.LogFormat, "log format")
	fs.StringVar(&config.Environment, "e", config.Environment, "environment")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/feedbackhub/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   gRPC health bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-k int      bcrypt cost
//	-l string   log format: json, text, zap
//	-m bool     run migrations on start
//	-e bool     allow any manager to edit any feedback
//
// args is filtered through flagx.FilterArgs first so that -c/-config and
// flags owned by other components do not break parsing.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-d", "-s", "-t", "-k", "-l", "-m", "-e"})

	fs := flag.NewFlagSet("feedbackhub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrHealth, "g", config.EndpointAddrHealth, "gRPC health address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	ttl := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogFormat, "l", config.LogFormat, "log format (json, text, zap)")
	fs.BoolVar(&config.RunMigrations, "m", config.RunMigrations, "run migrations on start")
	fs.BoolVar(&config.AllowAnyManagerEdit, "e", config.AllowAnyManagerEdit, "allow any manager to edit any feedback")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// -t is applied only when given so that sub-minute TTLs from JSON or
	// the environment survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.AccessTokenValidityDuration = time.Duration(*ttl) * time.Minute
		}
	})
	return nil
}

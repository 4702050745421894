// Package config holds settings for the feedbackctl client.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the CLI.
//
//   - ServerAddr: base URL of the feedbackhub HTTP API.
//   - RequestTimeout: per-call HTTP timeout.
//   - SessionDir: where the session cache lives; empty means the user config dir.
type Config struct {
	ServerAddr     string        `env:"SERVER_ADDR"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	SessionDir     string        `env:"SESSION_DIR"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.SessionDir = ""
}

// Load applies defaults, then the JSON file named by -c/-config in args,
// then FEEDBACKCTL_* environment variables. Command-line flags are bound by
// the cobra root command on top of the result.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	return cfg, nil
}

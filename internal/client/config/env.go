package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces the client's environment variables.
const EnvPrefix = "FEEDBACKCTL_"

// dotenvFile is an optional per-directory override file.
var dotenvFile = ".feedbackctl.env"

func parseEnv(cfg *Config) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
}

package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment variable read by the server.
const EnvPrefix = "FEEDBACKHUB_"

// dotenvFile is loaded, if present, before the environment is parsed.
// Variables already set in the process environment take precedence.
var dotenvFile = ".env"

func parseEnv(config *Config) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix})
}

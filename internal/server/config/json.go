package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/feedbackhub/internal/flagx"
	"github.com/dmitrijs2005/feedbackhub/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Every field is
// optional; only fields present in the file override the current value.
type JsonConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	EndpointAddrHealth          *string         `json:"endpoint_addr_health"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	BcryptCost                  *int            `json:"bcrypt_cost"`
	RequestTimeout              *timex.Duration `json:"request_timeout"`
	ShutdownTimeout             *timex.Duration `json:"shutdown_timeout"`
	LogFormat                   *string         `json:"log_format"`
	RunMigrations               *bool           `json:"run_migrations"`
	AllowAnyManagerEdit         *bool           `json:"allow_any_manager_edit"`
}

// parseJSON overlays values from the file given by -c/-config in args.
// Nothing happens when no file is named.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	setIf(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIf(&config.EndpointAddrHealth, c.EndpointAddrHealth)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.LogFormat, c.LogFormat)
	setIf(&config.RunMigrations, c.RunMigrations)
	setIf(&config.AllowAnyManagerEdit, c.AllowAnyManagerEdit)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

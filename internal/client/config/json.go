package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/feedbackhub/internal/flagx"
	"github.com/dmitrijs2005/feedbackhub/internal/timex"
)

// JsonConfig is the on-disk shape of the client config file.
type JsonConfig struct {
	ServerAddr     *string         `json:"server_addr"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	SessionDir     *string         `json:"session_dir"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.ServerAddr != nil {
		cfg.ServerAddr = *jc.ServerAddr
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDir != nil {
		cfg.SessionDir = *jc.SessionDir
	}
	return nil
}

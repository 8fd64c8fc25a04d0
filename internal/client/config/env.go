package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig mirrors Config for envconfig processing. Empty values mean
// "not set" and leave the current Config untouched.
type envConfig struct {
	APIBaseURL     string        `envconfig:"FYOFFICE_API_URL"`
	RequestTimeout time.Duration `envconfig:"FYOFFICE_REQUEST_TIMEOUT"`
	TokenDBPath    string        `envconfig:"FYOFFICE_TOKEN_DB"`
}

func parseEnv(cfg *Config) error {
	var ec envConfig
	if err := envconfig.Process("", &ec); err != nil {
		return err
	}
	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.TokenDBPath != "" {
		cfg.TokenDBPath = ec.TokenDBPath
	}
	return nil
}

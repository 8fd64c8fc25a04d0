// Package config assembles runtime settings for the Fy Office console from
// defaults, environment variables, an optional JSON file, and flags. Later
// sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the console client.
//
// Fields:
//   - APIBaseURL: base URL of the REST backend, with trailing slash
//     (resource paths like "Computers/" are appended to it).
//   - RequestTimeout: per-request deadline applied by the HTTP core.
//   - TokenDBPath: path of the sqlite file holding the persisted bearer token.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	TokenDBPath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000/api/"
	c.RequestTimeout = 15 * time.Second
	c.TokenDBPath = "fyoffice.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}

// Package config handles configuration for the client, including defaults,
// JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the inkspot CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST endpoint.
//   - RequestTimeout: per-request timeout of the shared HTTP client.
//   - SessionDB: path of the local SQLite session database.
//   - UnreadPollInterval: how often the background poller checks for unread
//     messages and server reachability.
type Config struct {
	ServerBaseURL      string
	RequestTimeout     time.Duration
	SessionDB          string
	UnreadPollInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.SessionDB = "inkspot.db"
	c.UnreadPollInterval = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import "time"

// Config holds runtime settings for the billtrackery CLI.
//
// Fields:
//   - APIEndpointURL: the single GraphQL endpoint every operation is POSTed to.
//   - APIKey: static key sent on every call, login included.
//   - Channel: constant channel identifier header.
//   - DatabasePath: sqlite file holding the persisted session slot.
//   - RequestTimeout: transport deadline per call; zero disables it.
//   - Verbose: enables debug logging.
type Config struct {
	APIEndpointURL string
	APIKey         string
	Channel        string
	DatabasePath   string
	RequestTimeout time.Duration
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpointURL = "https://www.atendimento.cemig.com.br/graphql"
	c.APIKey = "fcad2ef3-49b7-4ac8-bcdb-d78c0fa6e0b6"
	c.Channel = "App"
	c.DatabasePath = "billtrackery.db"
	c.RequestTimeout = 30 * time.Second
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

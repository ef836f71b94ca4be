package config

import "time"

// Config holds runtime settings of the collabdocs client.
type Config struct {
	// ServerURL is the API base URL, e.g. http://127.0.0.1:8080/api.
	ServerURL      string
	RequestTimeout time.Duration
	// DatabasePath is the SQLite file keeping the session between runs.
	DatabasePath string
	UserCacheTTL time.Duration
	LogLevel     string
	// LogFormat selects the log encoder: "console" or "json".
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "collabdocs.db"
	c.UserCacheTTL = 5 * time.Minute
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// LoadConfig applies defaults, then overlays the JSON file, the environment
// and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

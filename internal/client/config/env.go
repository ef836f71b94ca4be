package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "COLLABDOCS"

// parseEnv overlays cfg with COLLABDOCS_* environment variables. Durations
// accept time.ParseDuration syntax. It panics on malformed values.
func parseEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{"server_url", "request_timeout", "database_path", "user_cache_ttl", "log_level", "log_format"} {
		if err := v.BindEnv(key); err != nil {
			panic(err)
		}
	}

	if v.IsSet("server_url") {
		cfg.ServerURL = v.GetString("server_url")
	}
	if v.IsSet("request_timeout") {
		cfg.RequestTimeout = mustDuration(v, "request_timeout")
	}
	if v.IsSet("database_path") {
		cfg.DatabasePath = v.GetString("database_path")
	}
	if v.IsSet("user_cache_ttl") {
		cfg.UserCacheTTL = mustDuration(v, "user_cache_ttl")
	}
	if v.IsSet("log_level") {
		cfg.LogLevel = v.GetString("log_level")
	}
	if v.IsSet("log_format") {
		cfg.LogFormat = v.GetString("log_format")
	}
}

func mustDuration(v *viper.Viper, key string) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		panic(fmt.Errorf("%s_%s: %w", envPrefix, strings.ToUpper(key), err))
	}
	return d
}

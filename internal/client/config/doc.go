// Package config loads runtime configuration for the collabdocs client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables prefixed with COLLABDOCS_.
//  4. Command-line flags.
//
// Supported flags
//
//	-a string   API base URL
//	-t int      request timeout (seconds)
//	-d string   path of the local SQLite database
//	-l string   log level (debug, info, warn, error)
//
// Environment
//
//	COLLABDOCS_SERVER_URL, COLLABDOCS_REQUEST_TIMEOUT ("10s"),
//	COLLABDOCS_DATABASE_PATH, COLLABDOCS_USER_CACHE_TTL, COLLABDOCS_LOG_LEVEL
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "10s" or
// integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8080/api",
//	  "request_timeout": "10s",
//	  "database_path": "collabdocs.db",
//	  "user_cache_ttl": "5m",
//	  "log_level": "info"
//	}
package config

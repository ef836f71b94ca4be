package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api", c.ServerURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "collabdocs.db", c.DatabasePath)
	assert.Equal(t, 5*time.Minute, c.UserCacheTTL)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "console", c.LogFormat)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, t.TempDir(), "cfg.json", map[string]any{
		"server_url":    "https://json/api",
		"database_path": "json.db",
		"log_level":     "warn",
	})
	t.Setenv("COLLABDOCS_DATABASE_PATH", "env.db")
	t.Setenv("COLLABDOCS_LOG_LEVEL", "error")
	os.Args = []string{"testbin", "-c", path, "-l", "debug"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "https://json/api", cfg.ServerURL)
	assert.Equal(t, "env.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

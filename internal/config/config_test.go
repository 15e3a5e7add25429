package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	var c Config
	c.LoadDefaults()

	assert.Equal(t, filepath.Join("/data", "todokeeper", "todo_app.db"), c.DatabasePath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadDefaults_FallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	var c Config
	c.LoadDefaults()

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.DatabasePath, filepath.Join(home, ".local", "share")),
		"expected path under ~/.local/share, got %s", c.DatabasePath)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv("TODOKEEPER_DATABASE_PATH", "")
	t.Setenv("TODOKEEPER_LOG_LEVEL", "")

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.NotEmpty(t, cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsBeatEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("TODOKEEPER_DATABASE_PATH", "/from/env.db")
	t.Setenv("TODOKEEPER_LOG_LEVEL", "warn")
	os.Args = []string{"testbin", "-d", "/from/flag.db"}

	cfg := LoadConfig()

	assert.Equal(t, "/from/flag.db", cfg.DatabasePath, "flag overrides env")
	assert.Equal(t, "warn", cfg.LogLevel, "env survives when no flag given")
}

package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the Todokeeper CLI.
//
// Fields:
//   - DatabasePath: location of the SQLite database file.
//   - LogLevel: minimum diagnostic logging level (debug, info, warn, error).
type Config struct {
	DatabasePath string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults. The database lands in
// $XDG_DATA_HOME/todokeeper, falling back to ~/.local/share/todokeeper.
func (c *Config) LoadDefaults() {
	c.DatabasePath = defaultDatabasePath()
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (optionally seeded by a .env file), a JSON file (if
// one was named) and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

func defaultDatabasePath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// последний резерв: рабочая директория
			return "todo_app.db"
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "todokeeper", "todo_app.db")
}

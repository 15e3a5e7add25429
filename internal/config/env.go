package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; a missing file is not an
// error. Variables already set in the environment win over .env values.
//
// Recognized variables:
//
//	TODOKEEPER_DATABASE_PATH  — overrides Config.DatabasePath
//	TODOKEEPER_LOG_LEVEL      — overrides Config.LogLevel
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("TODOKEEPER_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("TODOKEEPER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

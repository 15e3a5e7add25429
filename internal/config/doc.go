// Package config loads runtime configuration for the Todokeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file in the
//     working directory (see parseEnv): TODOKEEPER_DATABASE_PATH and
//     TODOKEEPER_LOG_LEVEL.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the database file
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "database_path": "/home/user/.local/share/todokeeper/todo_app.db",
//	  "log_level": "debug"
//	}
//
// Primary API
//
//   - type Config                     — holds DatabasePath and LogLevel
//   - func LoadConfig() *Config       — defaults, then env, JSON, flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config

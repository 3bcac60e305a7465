// Package config loads application configuration from environment
// variables.  Unlike secrets-bearing services, every value here has a
// sensible default so the server can start with no environment at all:
// port 3000 and a community.db file in the working directory.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBPath string // path of the SQLite database file
}

// Load reads configuration values from environment variables and
// returns a Config, falling back to defaults for anything unset.
func Load() Config {
	return Config{
		Env:    getenv("APP_ENV", "dev"),          // environment (dev/test/prod)
		Port:   getenv("APP_PORT", "3000"),        // port to bind the HTTP server
		DBPath: getenv("DB_PATH", "community.db"), // SQLite file, created on first run
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

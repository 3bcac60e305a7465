package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_PATH", "")
	cfg := Load()
	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.DBPath != "community.db" {
		t.Fatalf("expected default db path community.db, got %q", cfg.DBPath)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_PATH", "/tmp/other.db")
	cfg := Load()
	if cfg.Port != "8080" || cfg.DBPath != "/tmp/other.db" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadCacheConfig(t *testing.T) {
	cfg := LoadCacheConfig()
	if cfg.Enabled {
		t.Fatalf("cache must default to disabled")
	}
	if !cfg.Methods["GET"] {
		t.Fatalf("expected GET to be cacheable by default")
	}

	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "5s")
	t.Setenv("CACHE_METHODS", "get, head")
	cfg = LoadCacheConfig()
	if !cfg.Enabled || cfg.TTL != 5*time.Second {
		t.Fatalf("cache env overrides not applied: %+v", cfg)
	}
	if !cfg.Methods["GET"] || !cfg.Methods["HEAD"] {
		t.Fatalf("methods not parsed: %v", cfg.Methods)
	}
}

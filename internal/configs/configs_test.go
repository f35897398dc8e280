package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "DATABASE_DSN", "DB_TIMEOUT_SECONDS",
		"RATE_LIMIT_PER_MINUTE", "REDIS_HOST", "REDIS_PORT", "SHUTDOWN_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.AppURL != "127.0.0.1:8888" {
		t.Errorf("expected default listen address 127.0.0.1:8888, got %s", cfg.AppURL)
	}
	if cfg.DatabaseDSN != "todo.db" {
		t.Errorf("expected default DSN todo.db, got %s", cfg.DatabaseDSN)
	}
	if cfg.DBTimeoutSeconds != 5 {
		t.Errorf("expected default db timeout 5s, got %d", cfg.DBTimeoutSeconds)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("redis should be off by default, got %s", cfg.RedisAddr)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("REDIS_HOST", "redis.internal")

	cfg := Load()

	if cfg.AppURL != "0.0.0.0:9000" {
		t.Errorf("expected 0.0.0.0:9000, got %s", cfg.AppURL)
	}
	if cfg.RedisAddr != "redis.internal:6379" {
		t.Errorf("expected redis address with default port, got %s", cfg.RedisAddr)
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT", "RATE_LIMIT_RPS", "CORS_ORIGINS",
		"OVERPASS_URL", "OVERPASS_TIMEOUT", "USER_AGENT",
		"DB_PATH", "AUDIT_WORKERS", "AUDIT_BUFFER_SIZE", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Overpass.Timeout != 30*time.Second {
		t.Errorf("expected 30s overpass timeout, got %s", cfg.Overpass.Timeout)
	}
	if cfg.AuditEnabled() {
		t.Error("expected audit log to be disabled without DB_PATH")
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "*" {
		t.Errorf("expected wildcard cors origin, got %v", cfg.Server.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OVERPASS_TIMEOUT", "5s")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Overpass.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.Overpass.Timeout)
	}
	if len(cfg.Server.CORSOrigins) != 2 {
		t.Errorf("expected 2 cors origins, got %v", cfg.Server.CORSOrigins)
	}
	if !cfg.AuditEnabled() {
		t.Error("expected audit log to be enabled")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port out of range", "SERVER_PORT", "70000"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"zero rate limit", "RATE_LIMIT_RPS", "0"},
		{"negative timeout", "OVERPASS_TIMEOUT", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

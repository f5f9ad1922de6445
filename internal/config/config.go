package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Overpass OverpassConfig
	Audit    AuditConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	RateLimitRPS int
	CORSOrigins  []string
}

type OverpassConfig struct {
	URL       string
	Timeout   time.Duration
	UserAgent string
}

// AuditConfig controls the lookup audit log. An empty DBPath disables it.
type AuditConfig struct {
	DBPath      string
	WorkerCount int
	BufferSize  int
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "localhost"),
			Port:         getEnvInt("SERVER_PORT", 8080),
			RateLimitRPS: getEnvInt("RATE_LIMIT_RPS", 5),
			CORSOrigins:  getEnvList("CORS_ORIGINS", []string{"*"}),
		},
		Overpass: OverpassConfig{
			URL:       getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
			Timeout:   getEnvDuration("OVERPASS_TIMEOUT", 30*time.Second),
			UserAgent: getEnv("USER_AGENT", "go-nearby-hospitals/1.0"),
		},
		Audit: AuditConfig{
			DBPath:      getEnv("DB_PATH", ""),
			WorkerCount: getEnvInt("AUDIT_WORKERS", 1),
			BufferSize:  getEnvInt("AUDIT_BUFFER_SIZE", 64),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// AuditEnabled reports whether finished sessions should be recorded.
func (c *Config) AuditEnabled() bool {
	return c.Audit.DBPath != ""
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.RateLimitRPS < 1 {
		return fmt.Errorf("rate limit must be at least 1 req/s, got %d", c.Server.RateLimitRPS)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Overpass.URL == "" {
		return fmt.Errorf("overpass url must not be empty")
	}
	if c.Overpass.Timeout <= 0 {
		return fmt.Errorf("overpass timeout must be positive")
	}

	if c.AuditEnabled() {
		if c.Audit.WorkerCount < 1 {
			return fmt.Errorf("audit worker count must be at least 1")
		}
		if c.Audit.BufferSize < 1 {
			return fmt.Errorf("audit buffer size must be at least 1")
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

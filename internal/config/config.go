package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds process configuration loaded from YAML with env overrides.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds the document-store connection settings.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"` // Postgres or SQLite DSN, dialect auto-detected.
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"` // Listen address, host:port.
}

// RedisConfig holds the optional summary cache settings.
type RedisConfig struct {
	Addr                   string `yaml:"addr"`                      // Redis address; empty disables caching.
	SummaryCacheTTLSeconds int    `yaml:"summary_cache_ttl_seconds"` // Snapshot TTL in seconds.
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // logrus level name.
	File  string `yaml:"file"`  // Log file path; empty logs to stdout.
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database: DatabaseConfig{DSN: "billing.db"},
		Server:   ServerConfig{Addr: ":8080"},
		Redis:    RedisConfig{SummaryCacheTTLSeconds: 30},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads configuration from path and applies environment overrides.
// A missing file is not an error; defaults plus env apply.
func Load(path string) (Config, error) {
	cfg := Default()

	trimmed := strings.TrimSpace(path)
	if trimmed != "" {
		data, errRead := os.ReadFile(trimmed)
		if errRead != nil {
			if !os.IsNotExist(errRead) {
				return Config{}, fmt.Errorf("config: read %s: %w", trimmed, errRead)
			}
		} else if errDecode := yaml.Unmarshal(data, &cfg); errDecode != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", trimmed, errDecode)
		}
	}

	applyEnvOverrides(&cfg)

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return Config{}, fmt.Errorf("config: database dsn is required")
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = ":8080"
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win over file values.
func applyEnvOverrides(cfg *Config) {
	if dsn := strings.TrimSpace(os.Getenv("BILLING_DSN")); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if addr := strings.TrimSpace(os.Getenv("BILLING_ADDR")); addr != "" {
		cfg.Server.Addr = addr
	}
	if addr := strings.TrimSpace(os.Getenv("BILLING_REDIS_ADDR")); addr != "" {
		cfg.Redis.Addr = addr
	}
	if level := strings.TrimSpace(os.Getenv("BILLING_LOG_LEVEL")); level != "" {
		cfg.Log.Level = level
	}
}

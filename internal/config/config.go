// Package config loads application configuration from an optional yaml file
// merged with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pabakn/Astro-Destiny/internal/logging"
)

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	StaticDir       string        `yaml:"static_dir"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	AuditLogPath    string        `yaml:"audit_log_path"`
}

// DatabaseConfig controls the Postgres connection. An empty DSN selects the
// in-memory store.
type DatabaseConfig struct {
	DSN             string `yaml:"dsn"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime_seconds"`
}

// ChatConfig controls the outbound completion API. An empty APIKey disables
// the chat endpoint.
type ChatConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"-"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`

	// RatePerSecond / Burst bound per-client chat traffic.
	RatePerSecond int `yaml:"rate_per_second"`
	Burst         int `yaml:"burst"`
}

// HoroscopesConfig controls the daily prediction refresher. A zero interval
// disables it.
type HoroscopesConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Logging    logging.Config   `yaml:"logging"`
	Chat       ChatConfig       `yaml:"chat"`
	Horoscopes HoroscopesConfig `yaml:"horoscopes"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":5000",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			StaticDir:       "public",
			AllowedOrigins:  []string{"*"},
		},
		Database: DatabaseConfig{
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Logging: logging.Config{Level: "info", Format: "text"},
		Chat: ChatConfig{
			BaseURL:       "https://api.openai.com/v1",
			Model:         "gpt-4o",
			Timeout:       30 * time.Second,
			RatePerSecond: 1,
			Burst:         5,
		},
	}
}

// Load reads config.yaml when present and applies environment overrides.
func Load() (*Config, error) {
	return LoadFromPath("config.yaml")
}

// LoadFromPath reads the given yaml file (missing file falls back to
// defaults) and applies environment overrides.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()

	if cfg.Server.Addr == "" {
		return nil, fmt.Errorf("server addr is required")
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ASTRO_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if _, err := strconv.Atoi(v); err == nil {
			c.Server.Addr = ":" + v
		}
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv("AUDIT_LOG_PATH"); v != "" {
		c.Server.AuditLogPath = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("AI_INTEGRATIONS_OPENAI_API_KEY"); v != "" {
		c.Chat.APIKey = v
	}
	if v := os.Getenv("AI_INTEGRATIONS_OPENAI_BASE_URL"); v != "" {
		c.Chat.BaseURL = v
	}
	if v := os.Getenv("CHAT_MODEL"); v != "" {
		c.Chat.Model = v
	}
	if v := os.Getenv("HOROSCOPE_REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Horoscopes.RefreshInterval = d
		}
	}
}

// Package config loads the service configuration from an optional YAML
// file overridden by EB_* environment variables, and opens the database.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port      int    `yaml:"port"`
	BaseURL   string `yaml:"base_url"`
	UploadDir string `yaml:"upload_dir"`

	LogLevel  slog.Level `yaml:"-"`
	LogFormat string     `yaml:"log_format"`

	DBHost     string `yaml:"db_host"`
	DBPort     int    `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBSSLMode  string `yaml:"db_ssl_mode"`

	AllowOrigins []string `yaml:"allow_origins"`
}

// Load builds the configuration: defaults, then the YAML file named by
// EB_CONFIG_FILE if set, then environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         8080,
		BaseURL:      "http://localhost:8080",
		UploadDir:    "uploads",
		LogLevel:     slog.LevelInfo,
		LogFormat:    "text",
		DBHost:       "localhost",
		DBPort:       5432,
		DBName:       "bills",
		DBUser:       "bills",
		DBSSLMode:    "disable",
		AllowOrigins: []string{"http://localhost:3000"},
	}

	if path := os.Getenv("EB_CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if v := os.Getenv("EB_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("EB_PORT: %w", err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("EB_BASE_URL"); v != "" {
		cfg.BaseURL = strings.TrimSuffix(v, "/")
	}
	if v := os.Getenv("EB_UPLOAD_DIR"); v != "" {
		cfg.UploadDir = v
	}
	if v := os.Getenv("EB_LOG_LEVEL"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("EB_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}
	if v := os.Getenv("EB_LOG_FORMAT"); v != "" {
		if v != "text" && v != "json" {
			return nil, fmt.Errorf("EB_LOG_FORMAT: expected text or json, got %q", v)
		}
		cfg.LogFormat = v
	}
	if v := os.Getenv("EB_DB_HOST"); v != "" {
		cfg.DBHost = v
	}
	if v := os.Getenv("EB_DB_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("EB_DB_PORT: %w", err)
		}
		cfg.DBPort = p
	}
	if v := os.Getenv("EB_DB_NAME"); v != "" {
		cfg.DBName = v
	}
	if v := os.Getenv("EB_DB_USER"); v != "" {
		cfg.DBUser = v
	}
	if v := os.Getenv("EB_DB_PASSWORD"); v != "" {
		cfg.DBPassword = v
	}
	if v := os.Getenv("EB_DB_SSL_MODE"); v != "" {
		cfg.DBSSLMode = v
	}
	if v := os.Getenv("EB_ALLOW_ORIGINS"); v != "" {
		cfg.AllowOrigins = strings.Split(v, ",")
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Logger builds the process logger per LogFormat/LogLevel.
func (c *Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	var h slog.Handler
	if c.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}

// InitDB opens the postgres connection for the bills store.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

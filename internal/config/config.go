// Package config provides configuration management for the restaurant guide.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvDataset  = "CHEFGUIDE_DATASET"
	EnvAddr     = "CHEFGUIDE_ADDR"
	EnvLogLevel = "CHEFGUIDE_LOG_LEVEL"
)

// Configuration validation errors.
var (
	ErrInvalidMaxAttempts       = errors.New("dataset.retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("dataset.retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("dataset.retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("dataset.retry.timeout_sec must be at least 1")
	ErrInvalidBufferSize        = errors.New("dataset.buffer_size_kb must be at least 1")
	ErrWatchNeedsFile           = errors.New("dataset.watch requires dataset.file")
	ErrMissingAddr              = errors.New("server.addr is required")
	ErrInvalidShutdownTimeout   = errors.New("server.shutdown_timeout_sec must be at least 1")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat         = errors.New("logging.format must be 'text' or 'json'")
	ErrInvalidExportFormat      = errors.New("export.format must be one of: json, csv, markdown, sqlite")
)

// Config represents the complete application configuration.
type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Export   ExportConfig   `yaml:"export"`
	Features FeaturesConfig `yaml:"features"`
}

// DatasetConfig says where the dataset document comes from. With neither File nor
// URL set the bundled dataset is used.
type DatasetConfig struct {
	File         string      `yaml:"file"`
	URL          string      `yaml:"url"`
	BackupURLs   []string    `yaml:"backup_urls"`
	Watch        bool        `yaml:"watch"`
	Retry        RetryPolicy `yaml:"retry"`
	BufferSizeKb int         `yaml:"buffer_size_kb"`
}

// IsLocalFile returns true if the dataset is read from a local file.
func (d *DatasetConfig) IsLocalFile() bool {
	return d.File != ""
}

// IsEmbedded returns true if the bundled dataset is used.
func (d *DatasetConfig) IsEmbedded() bool {
	return d.File == "" && d.URL == ""
}

// GetAllURLs returns the primary URL followed by the backups.
func (d *DatasetConfig) GetAllURLs() []string {
	var urls []string
	if d.URL != "" {
		urls = append(urls, d.URL)
	}

	return append(urls, d.BackupURLs...)
}

// RetryPolicy defines retry behavior for remote datasets.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr               string   `yaml:"addr"`
	TrustedProxies     []string `yaml:"trusted_proxies"`
	CORSOrigins        []string `yaml:"cors_origins"`
	ShutdownTimeoutSec int      `yaml:"shutdown_timeout_sec"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ExportConfig defines export defaults.
type ExportConfig struct {
	BasePath    string `yaml:"base_path"`
	Format      string `yaml:"format"`
	PrettyPrint bool   `yaml:"pretty_print"`
	Sign        bool   `yaml:"sign"`
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	// StrictValidation stops the server when a watched dataset change fails to load.
	// When false the previous snapshot keeps serving and the failure is only logged.
	StrictValidation bool `yaml:"strict_validation"`
}

// Default returns a valid configuration serving the bundled dataset.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Retry: RetryPolicy{
				MaxAttempts:       3,
				InitialDelayMs:    500,
				MaxDelayMs:        30000,
				BackoffMultiplier: 2.0,
				TimeoutSec:        30,
			},
			BufferSizeKb: 1024,
		},
		Server: ServerConfig{
			Addr:               ":8080",
			TrustedProxies:     []string{"127.0.0.1"},
			CORSOrigins:        []string{"*"},
			ShutdownTimeoutSec: 10,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Export:  ExportConfig{BasePath: "./export", Format: "json", PrettyPrint: true, Sign: true},
	}
}

// LoadConfig loads configuration from a YAML file on top of Default. An empty path
// skips the file. A .env file in the working directory is loaded first if present, then
// environment overrides are applied.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnvOverrides lets the environment pick the dataset, listen address and log level.
// A dataset value starting with http:// or https:// is treated as a URL.
func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvDataset)); v != "" {
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			c.Dataset.URL = v
			c.Dataset.File = ""
		} else {
			c.Dataset.File = v
			c.Dataset.URL = ""
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.Server.Addr = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	retry := c.Dataset.Retry
	if retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Dataset.BufferSizeKb < 1 {
		return ErrInvalidBufferSize
	}

	if c.Dataset.Watch && !c.Dataset.IsLocalFile() {
		return ErrWatchNeedsFile
	}

	if c.Server.Addr == "" {
		return ErrMissingAddr
	}

	if c.Server.ShutdownTimeoutSec < 1 {
		return ErrInvalidShutdownTimeout
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	validFormats := map[string]bool{"json": true, "csv": true, "markdown": true, "sqlite": true}
	if !validFormats[c.Export.Format] {
		return ErrInvalidExportFormat
	}

	return nil
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// ShutdownTimeout returns the graceful shutdown budget.
func (s *ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSec) * time.Second
}

// DatasetSource describes where the dataset is read from.
func (c *Config) DatasetSource() string {
	switch {
	case c.Dataset.IsLocalFile():
		return c.Dataset.File
	case c.Dataset.URL != "":
		return c.Dataset.URL
	default:
		return "embedded"
	}
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Dataset: %s, Addr: %s, Log: %s/%s}",
		c.DatasetSource(),
		c.Server.Addr,
		c.Logging.Level,
		c.Logging.Format,
	)
}

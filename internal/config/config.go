// Package config loads the riset configuration file, .env and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/tbtb-research/riset/internal/api"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvBaseURL     = "RISET_BASE_URL"
	EnvLogLevel    = "RISET_LOG_LEVEL"
	EnvLogBodies   = "RISET_LOG_BODIES"
	EnvSessionFile = "RISET_SESSION_FILE"
	EnvThemeFile   = "RISET_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	API         APIConfig     `yaml:"api"`
	Logging     LoggingConfig `yaml:"logging"`
	Session     SessionConfig `yaml:"session"`
	ColorScheme ColorScheme   `yaml:"theme"`
}

// APIConfig configures the HTTP client
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	// LogBodies is a pointer so an explicit false survives applyDefaults
	LogBodies *bool         `yaml:"log_bodies"`
	Breaker   BreakerConfig `yaml:"breaker"`
}

// BreakerConfig configures the optional circuit breaker
type BreakerConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxFailures uint32        `yaml:"max_failures"`
	OpenTimeout time.Duration `yaml:"open_timeout"`
}

// LoggingConfig configures the rotating log file
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// SessionConfig locates the session file
type SessionConfig struct {
	File string `yaml:"file"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{ColorScheme: DefaultColorScheme()}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// A .env file in the working directory is read first; it never overrides
// variables already set in the environment.
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		cfg := &Config{}
		if err := cfg.applyEnv(); err != nil {
			return nil, err
		}
		cfg.finish()
		return cfg, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path, applying the environment on top.
// A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.finish()

	return cfg, nil
}

// finish merges the theme file and fills defaults
func (c *Config) finish() {
	loadThemeFile(c)
	c.applyDefaults()
}

// loadThemeFile loads and merges theme from RISET_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies RISET_* overrides
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogBodies); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvLogBodies, v, err)
		}
		c.API.LogBodies = &b
	}
	if v := os.Getenv(EnvSessionFile); v != "" {
		c.Session.File = v
	}
	return nil
}

// SaveTo writes the config to path
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Path returns where Load reads the config file from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "riset", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "riset", "config.yaml"), nil
}

// dataDir returns ~/.riset, or a relative .riset when there is no home
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".riset"
	}
	return filepath.Join(homeDir, ".riset")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	d := api.DefaultConfig()

	if c.API.BaseURL == "" {
		c.API.BaseURL = d.BaseURL
	}
	if c.API.ConnectTimeout <= 0 {
		c.API.ConnectTimeout = d.ConnectTimeout
	}
	if c.API.ReadTimeout <= 0 {
		c.API.ReadTimeout = d.ReadTimeout
	}
	if c.API.WriteTimeout <= 0 {
		c.API.WriteTimeout = d.WriteTimeout
	}
	if c.API.LogBodies == nil {
		logBodies := d.LogBodies
		c.API.LogBodies = &logBodies
	}
	if c.API.Breaker.MaxFailures == 0 {
		c.API.Breaker.MaxFailures = d.Breaker.MaxFailures
	}
	if c.API.Breaker.OpenTimeout <= 0 {
		c.API.Breaker.OpenTimeout = d.Breaker.OpenTimeout
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	if c.Logging.File == "" {
		c.Logging.File = filepath.Join(dataDir(), "logs", "riset.log")
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = 10
	}
	if c.Logging.MaxBackups <= 0 {
		c.Logging.MaxBackups = 3
	}
	if c.Logging.MaxAgeDays <= 0 {
		c.Logging.MaxAgeDays = 28
	}

	if c.Session.File == "" {
		c.Session.File = filepath.Join(dataDir(), "session.yaml")
	}

	c.ColorScheme.ApplyDefaults()
}

// ClientConfig converts the api section into the transport configuration
func (c *Config) ClientConfig(version string) api.Config {
	cfg := api.Config{
		BaseURL:        c.API.BaseURL,
		ConnectTimeout: c.API.ConnectTimeout,
		ReadTimeout:    c.API.ReadTimeout,
		WriteTimeout:   c.API.WriteTimeout,
		UserAgent:      "riset-cli/" + version,
		Breaker: api.BreakerConfig{
			Enabled:     c.API.Breaker.Enabled,
			MaxFailures: c.API.Breaker.MaxFailures,
			OpenTimeout: c.API.Breaker.OpenTimeout,
		},
	}
	if c.API.LogBodies != nil {
		cfg.LogBodies = *c.API.LogBodies
	}
	return cfg
}

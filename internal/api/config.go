package api

import (
	"time"
)

// DefaultBaseURL is the production API host
const DefaultBaseURL = "https://api-unand-research-875600580548.asia-southeast2.run.app/"

// DefaultTimeout applies to connect, read and write independently
const DefaultTimeout = 30 * time.Second

// Config is the immutable transport configuration. It is built once at startup
// and handed to New; the client never mutates it.
type Config struct {
	BaseURL        string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	// LogBodies records request and response bodies at debug level
	LogBodies bool
	UserAgent string

	Breaker BreakerConfig
}

// BreakerConfig controls the optional circuit breaker around the transport.
// An open breaker fails calls immediately; it never retries them.
type BreakerConfig struct {
	Enabled bool
	// MaxFailures is the number of consecutive failures that opens the breaker
	MaxFailures uint32
	// OpenTimeout is how long the breaker stays open before letting one probe through
	OpenTimeout time.Duration
}

// DefaultConfig returns the production configuration
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		ConnectTimeout: DefaultTimeout,
		ReadTimeout:    DefaultTimeout,
		WriteTimeout:   DefaultTimeout,
		LogBodies:      true,
		UserAgent:      "riset-cli",
		Breaker: BreakerConfig{
			Enabled:     false,
			MaxFailures: 3,
			OpenTimeout: 10 * time.Second,
		},
	}
}

// applyDefaults fills zero values with the defaults
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = d.ConnectTimeout
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
	if c.Breaker.MaxFailures == 0 {
		c.Breaker.MaxFailures = d.Breaker.MaxFailures
	}
	if c.Breaker.OpenTimeout <= 0 {
		c.Breaker.OpenTimeout = d.Breaker.OpenTimeout
	}
}

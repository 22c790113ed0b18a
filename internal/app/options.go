package app

import (
	"io"
	"log/slog"
	"net/http"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger     *slog.Logger
	httpClient *http.Client
	version    string
	closers    []io.Closer
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithHTTPClient replaces the HTTP client used by the API client
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = hc
	}
}

// WithVersion sets the version reported in the User-Agent header
func WithVersion(version string) Option {
	return func(cfg *appConfig) {
		cfg.version = version
	}
}

// WithCloser registers a resource released by App.Close, such as the log file
func WithCloser(c io.Closer) Option {
	return func(cfg *appConfig) {
		cfg.closers = append(cfg.closers, c)
	}
}

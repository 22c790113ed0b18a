// Package app wires configuration, the API client, the session store and the
// repositories into one container.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tbtb-research/riset/internal/api"
	"github.com/tbtb-research/riset/internal/config"
	"github.com/tbtb-research/riset/internal/models"
	"github.com/tbtb-research/riset/internal/repository"
	"github.com/tbtb-research/riset/internal/session"
)

// ErrSessionExpired is returned when the stored token is past its exp claim
var ErrSessionExpired = errors.New("session expired, log in again")

// App holds all application services and provides dependency injection.
// This is the main application container that manages resource lifecycles.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Client   *api.Client
	Sessions *session.Store
	Repo     *repository.Repository
	Version  string

	closers []io.Closer
	now     func() time.Time
}

// New creates a new App with all repositories initialized.
// This is the single entry point for creating the application container.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	options := &appConfig{version: "dev"}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	var clientOpts []api.Option
	clientOpts = append(clientOpts, api.WithLogger(logger))
	if options.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(options.httpClient))
	}

	client, err := api.New(cfg.ClientConfig(options.version), clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	store := session.NewStore(cfg.Session.File)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Client:   client,
		Sessions: store,
		Repo:     repository.NewRepository(client, store, logger),
		Version:  options.version,
		closers:  options.closers,
		now:      time.Now,
	}, nil
}

// Session returns the stored session, clearing it first if the token has expired.
// It returns session.ErrNoSession when nobody is logged in.
func (a *App) Session() (*models.Session, error) {
	s, err := a.Sessions.Load()
	if err != nil {
		return nil, err
	}

	if session.Expired(s.Token, a.now()) {
		a.Logger.Info("stored token expired, clearing session", "user_id", s.UserID)
		if err := a.Sessions.Invalidate(); err != nil {
			a.Logger.Warn("failed to clear expired session", "error", err)
		}
		return nil, ErrSessionExpired
	}
	return s, nil
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	snap := a.Client.Metrics().Snapshot()
	a.Logger.Debug("api client metrics",
		"requests", snap.RequestsSent,
		"transport_failures", snap.TransportFailures,
		"http_failures", snap.HTTPFailures,
		"unauthorized", snap.Unauthorized,
		"uptime", snap.Uptime)

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Package cli holds the pieces shared by every riset command: the app
// lookup, output formatting, exit codes and interactive prompts.
package cli

import (
	"fmt"

	"github.com/tbtb-research/riset/internal/app"
	"github.com/tbtb-research/riset/internal/cli/styles"
	"github.com/tbtb-research/riset/internal/config"
	"github.com/tbtb-research/riset/internal/logging"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=..."
var Version = "dev"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with repositories

	// owned is false when the app came from the context and belongs to the caller
	owned bool
}

// NewCLI loads configuration, starts file logging and builds the application container
func NewCLI() (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := logging.Init(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.New(cfg,
		app.WithLogger(logging.Logger),
		app.WithVersion(Version),
		app.WithCloser(logFile))
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	styles.Init(cfg.ColorScheme)

	return &CLI{App: application, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

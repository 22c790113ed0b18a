package cli

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/tbtb-research/riset/internal/app"
	clipkg "github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/config"
	"github.com/tbtb-research/riset/internal/models"
	"github.com/tbtb-research/riset/internal/testutil"
)

// SetupCLITest starts a mock API and returns it with an App pointed at it.
// The session file lives in a temp dir and prompts are disabled.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles with the cli package
func SetupCLITest(t *testing.T) (*testutil.MockAPI, *app.App) {
	t.Helper()

	mock := testutil.NewMockAPI(t)

	cfg := config.Default()
	cfg.API.BaseURL = mock.URL()
	cfg.API.ConnectTimeout = 2 * time.Second
	cfg.API.ReadTimeout = 2 * time.Second
	cfg.API.WriteTimeout = 2 * time.Second
	cfg.Session.File = filepath.Join(t.TempDir(), "session.yaml")
	cfg.ColorScheme = config.MonochromeColorScheme()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	appInstance, err := app.New(cfg, app.WithLogger(logger), app.WithVersion("test"))
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	oldInteractive := clipkg.IsInteractive
	clipkg.IsInteractive = func() bool { return false }
	t.Cleanup(func() { clipkg.IsInteractive = oldInteractive })

	return mock, appInstance
}

// LoginTestUser stores a session as if `riset auth login` had succeeded
func LoginTestUser(t *testing.T, a *app.App, token, userID string) {
	t.Helper()

	if err := a.Sessions.Save(&models.Session{Token: token, UserID: userID}); err != nil {
		t.Fatalf("Failed to save test session: %v", err)
	}
}

// IsLoggedIn reports whether the app currently has a stored session
func IsLoggedIn(t *testing.T, a *app.App) bool {
	t.Helper()
	_, err := a.Sessions.Load()
	return err == nil
}

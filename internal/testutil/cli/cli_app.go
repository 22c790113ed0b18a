package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/app"
	"github.com/tbtb-research/riset/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance
// This injects the app through the context so commands use the mock API
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctxWithApp := app.WithContext(ctx, testApp)

	testutil.SetupCobraCommand(cmd, args)
	cmd.SetContext(ctxWithApp)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}

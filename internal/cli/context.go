package cli

import (
	"context"

	"github.com/tbtb-research/riset/internal/app"
	"github.com/tbtb-research/riset/internal/cli/styles"
)

// GetCLIFromContext returns a CLI around the app carried by ctx, or builds a
// new one from the user's configuration when ctx carries none.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := app.FromContext(ctx); ok {
		styles.Init(a.Config.ColorScheme)
		return &CLI{App: a}, nil
	}
	return NewCLI()
}

package app

import "context"

type contextKey string

const appKey contextKey = "app"

// WithContext returns a context carrying a.
// Commands pick the app up from their context instead of building one.
func WithContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// FromContext returns the App stored by WithContext
func FromContext(ctx context.Context) (*App, bool) {
	if ctx == nil {
		return nil, false
	}
	a, ok := ctx.Value(appKey).(*App)
	return a, ok && a != nil
}

package repository

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tbtb-research/riset/internal/api"
	"github.com/tbtb-research/riset/internal/testutil"
)

// fakeInvalidator counts Invalidate calls
type fakeInvalidator struct {
	calls atomic.Int32
	err   error
}

func (f *fakeInvalidator) Invalidate() error {
	f.calls.Add(1)
	return f.err
}

// setupRepo starts a mock API and builds a Repository against it
func setupRepo(t *testing.T) (*testutil.MockAPI, *Repository, *fakeInvalidator) {
	t.Helper()

	mock := testutil.NewMockAPI(t)
	cfg := api.DefaultConfig()
	cfg.BaseURL = mock.URL()
	cfg.ConnectTimeout = 2 * time.Second
	cfg.ReadTimeout = 2 * time.Second
	cfg.WriteTimeout = 2 * time.Second

	client, err := api.New(cfg)
	require.NoError(t, err)

	inv := &fakeInvalidator{}
	return mock, NewRepository(client, inv, nil), inv
}

// requireAPIError asserts err is an *api.Error and returns it
func requireAPIError(t *testing.T, err error) *api.Error {
	t.Helper()

	require.Error(t, err)
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr), "expected *api.Error, got %T: %v", err, err)
	return apiErr
}

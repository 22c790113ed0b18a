package repository

import (
	"log/slog"

	"github.com/tbtb-research/riset/internal/api"
)

// base holds what every repository shares
type base struct {
	client      *api.Client
	invalidator SessionInvalidator
	logger      *slog.Logger
}

// check invalidates the session on 401 and returns err unchanged
func (b *base) check(op string, err error) error {
	if err == nil {
		return nil
	}
	b.logger.Debug("api call failed",
		"operation", op,
		"kind", api.KindOf(err).String(),
		"status", api.StatusOf(err),
		"error", err)

	if api.IsUnauthorized(err) && b.invalidator != nil {
		if ierr := b.invalidator.Invalidate(); ierr != nil {
			b.logger.Warn("failed to invalidate session", "error", ierr)
		} else {
			b.logger.Info("session invalidated after 401", "operation", op)
		}
	}
	return err
}

// payload unwraps an endpoint that must return data
func payload[T any](b *base, op string, resp *api.Response, err error) (*T, error) {
	data, _, err := api.DecodeData[T](resp, err)
	if err != nil {
		return nil, b.check(op, err)
	}
	return data, nil
}

// list unwraps a collection endpoint; null data is an empty list
func list[T any](b *base, op string, resp *api.Response, err error) ([]T, error) {
	env, err := api.Decode[[]T](resp, err)
	if err != nil {
		return nil, b.check(op, err)
	}
	if env.Data == nil {
		return []T{}, nil
	}
	return *env.Data, nil
}

// message unwraps an endpoint whose data is ignored and returns the server message
func message(b *base, op string, resp *api.Response, err error) (string, error) {
	env, err := api.Decode[api.Unit](resp, err)
	if err != nil {
		return "", b.check(op, err)
	}
	return env.Message, nil
}

func newBase(client *api.Client, invalidator SessionInvalidator, logger *slog.Logger) base {
	if logger == nil {
		logger = slog.Default()
	}
	return base{client: client, invalidator: invalidator, logger: logger}
}

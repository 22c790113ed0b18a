package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker"
)

// errServerFailure marks a 5xx response as a breaker failure without losing the response
var errServerFailure = errors.New("server failure")

func newBreaker(cfg BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "riset-api",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String())
		},
	})
}

// guarded runs one round trip through the breaker when it is enabled.
// A rejected call never reaches the network and comes back as a transport error.
func (c *Client) guarded(httpReq *http.Request) (*Response, error) {
	if c.breaker == nil {
		return c.send(httpReq)
	}

	var (
		resp    *Response
		sendErr error
		sent    bool
	)
	_, err := c.breaker.Execute(func() (interface{}, error) {
		sent = true
		resp, sendErr = c.send(httpReq)
		switch {
		case sendErr != nil && errors.Is(sendErr, context.Canceled):
			// the caller gave up; not the server's fault
			return nil, nil
		case sendErr != nil:
			return nil, sendErr
		case resp.StatusCode >= http.StatusInternalServerError:
			return nil, errServerFailure
		}
		return nil, nil
	})

	if sent {
		return resp, sendErr
	}
	return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
}

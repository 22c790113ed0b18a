package api

import (
	"sync/atomic"
	"time"
)

// Metrics tracks client statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsSent      atomic.Int64
	TransportFailures atomic.Int64
	HTTPFailures      atomic.Int64
	Unauthorized      atomic.Int64
	StartTime         time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// record updates the counters for one finished round trip
func (m *Metrics) record(resp *Response, err error) {
	m.RequestsSent.Add(1)
	switch {
	case err != nil:
		m.TransportFailures.Add(1)
	case resp.StatusCode == 401:
		m.Unauthorized.Add(1)
		m.HTTPFailures.Add(1)
	case !resp.IsSuccessful():
		m.HTTPFailures.Add(1)
	}
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	RequestsSent      int64
	TransportFailures int64
	HTTPFailures      int64
	Unauthorized      int64
	Uptime            time.Duration
}

// Snapshot returns the current counter values
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		RequestsSent:      m.RequestsSent.Load(),
		TransportFailures: m.TransportFailures.Load(),
		HTTPFailures:      m.HTTPFailures.Load(),
		Unauthorized:      m.Unauthorized.Load(),
		Uptime:            time.Since(m.StartTime),
	}
}

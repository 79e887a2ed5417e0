// Package metrics declares the prometheus collectors shared across the service.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTP holds the request metrics of the API server.
type HTTP struct {
	// Duration is labelled by method, route pattern and status code.
	Duration *prometheus.HistogramVec
}

// NewHTTP creates the HTTP collectors and registers them on reg.
func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fortune",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "route", "code"})

	if err := reg.Register(duration); err != nil {
		return nil, fmt.Errorf("could not register http duration histogram: %w", err)
	}

	return &HTTP{Duration: duration}, nil
}

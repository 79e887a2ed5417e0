// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware of the fortune service.
package api

import (
	_ "embed"
	"fmt"
	"fortune/internal/api/handler/v1handler"
	"fortune/internal/config"
	"fortune/pkg/controller"
	"fortune/pkg/metrics"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// timeoutBody is written when a request exceeds RequestTimeout.
const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures bearer token verification for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string

	// RegisterPerMinute and LoginPerMinute rate limit the auth endpoints per
	// client IP. Zero disables the limit.
	RegisterPerMinute int
	LoginPerMinute    int
	// MaxRateLimitedClients bounds how many client IPs the limiters track.
	MaxRateLimitedClients int

	// Registerer and Gatherer default to the prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,

		RegisterPerMinute:     cfg.RateLimit.RegisterPerMinute,
		LoginPerMinute:        cfg.RateLimit.LoginPerMinute,
		MaxRateLimitedClients: cfg.RateLimit.MaxClients,
	}
}

type Deps struct {
	v1handler.Deps
}

func newLimiter(perMinute, maxClients int) (*controller.RateLimiter, error) {
	if perMinute <= 0 {
		return nil, nil
	}

	return controller.NewRateLimiter(perMinute, maxClients) //nolint: wrapcheck
}

// NewHandler builds the root handler of the server:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus), installed as the global meter provider
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes
// - pprof endpoints for profiling
// It also wraps the router with CORS, logging and metrics middlewares.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	httpMetrics, err := metrics.NewHTTP(reg)
	if err != nil {
		return nil, fmt.Errorf("could not create http metrics: %w", err)
	}

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)))

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	registerLimiter, err := newLimiter(opts.RegisterPerMinute, opts.MaxRateLimitedClients)
	if err != nil {
		return nil, fmt.Errorf("could not create register rate limiter: %w", err)
	}
	loginLimiter, err := newLimiter(opts.LoginPerMinute, opts.MaxRateLimitedClients)
	if err != nil {
		return nil, fmt.Errorf("could not create login rate limiter: %w", err)
	}

	r := chi.NewRouter()
	r.Use(controller.WithCORS, controller.WithLogger, func(next http.Handler) http.Handler {
		return controller.WithMetrics(httpMetrics, next)
	})

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Daily Fortune API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	r.Mount("/v1", v1handler.New(deps.Deps).Routes(secHandler, v1handler.RouterOptions{
		RegisterLimiter: registerLimiter,
		LoginLimiter:    loginLimiter,
	}))

	// pprof
	r.Mount(controller.PprofPrefix, controller.PprofMux())

	return r, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// Requests running longer than RequestTimeout are answered with 503.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

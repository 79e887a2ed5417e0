// Package controller holds the HTTP middlewares shared by every route.
//
//   - WithCORS answers preflight requests and sets CORS headers.
//   - WithLogger tags requests with an ID and writes the access log.
//   - WithMetrics records request latency per route.
//   - RateLimiter limits requests per client IP.
//   - PprofMux serves the runtime profiles.
package controller

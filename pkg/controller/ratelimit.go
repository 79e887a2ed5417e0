package controller

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// RateLimiter enforces a per client IP token bucket. Only the most recently
// seen clients are tracked, older buckets are evicted.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	clients *lru.Cache[string, *rate.Limiter]
}

// NewRateLimiter allows perMinute requests per client IP, bursting up to
// perMinute, while tracking at most maxClients IPs.
func NewRateLimiter(perMinute, maxClients int) (*RateLimiter, error) {
	if perMinute <= 0 {
		return nil, fmt.Errorf("invalid rate %d per minute", perMinute)
	}

	clients, err := lru.New[string, *rate.Limiter](maxClients)
	if err != nil {
		return nil, fmt.Errorf("could not create client cache: %w", err)
	}

	return &RateLimiter{
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		clients: clients,
	}, nil
}

func (l *RateLimiter) limiter(ip string) *rate.Limiter {
	if lim, ok := l.clients.Get(ip); ok {
		return lim
	}

	lim := rate.NewLimiter(l.limit, l.burst)
	if prev, ok, _ := l.clients.PeekOrAdd(ip, lim); ok {
		return prev
	}

	return lim
}

// Reserve consumes a token for ip. When none is available it returns false and
// how long the client should wait.
func (l *RateLimiter) Reserve(ip string, now time.Time) (bool, time.Duration) {
	r := l.limiter(ip).ReserveN(now, 1)
	if !r.OK() {
		return false, time.Minute
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)

		return false, delay
	}

	return true, 0
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, wait := l.Reserve(GetClientIP(r), time.Now())
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"code":"RATE_LIMITED","message":"too many requests"}`))

			return
		}

		next.ServeHTTP(w, r)
	})
}

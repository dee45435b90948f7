package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const idleLimiterTTL = 10 * time.Minute

// RateLimiter applies a token bucket per client IP.
type RateLimiter struct {
	clients sync.Map // map[string]*client
	stop    chan struct{}
}

type client struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware that allows perMinute requests per IP with the
// given burst.
func (rl *RateLimiter) Limit(perMinute, burst int) Middleware {
	every := rate.Limit(float64(perMinute) / 60.0)
	retryAfter := strconv.Itoa(60/max(perMinute, 1) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.get(clientIP(r), every, burst).allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) get(key string, every rate.Limit, burst int) *client {
	val, _ := rl.clients.LoadOrStore(key, &client{
		limiter:  rate.NewLimiter(every, burst),
		lastSeen: time.Now(),
	})
	return val.(*client)
}

func (c *client) allow() bool {
	c.mu.Lock()
	c.lastSeen = time.Now()
	c.mu.Unlock()
	return c.limiter.Allow()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.sweep(now)
		}
	}
}

// sweep drops limiters idle for longer than idleLimiterTTL.
func (rl *RateLimiter) sweep(now time.Time) {
	rl.clients.Range(func(key, value any) bool {
		c := value.(*client)
		c.mu.Lock()
		idle := now.Sub(c.lastSeen)
		c.mu.Unlock()
		if idle > idleLimiterTTL {
			rl.clients.Delete(key)
		}
		return true
	})
}

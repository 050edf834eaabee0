package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/edusphere-backend/internal/config"
)

// idleTTL is how long an untouched client bucket is kept.
const idleTTL = 10 * time.Minute

// RateLimiter implements per-client token bucket rate limiting.
// Clients are keyed by remote IP without the port.
type RateLimiter struct {
	perMinute int
	buckets   sync.Map // map[string]*bucket
	now       func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastSeen   time.Time
}

// NewRateLimiter creates a rate limiter and starts its cleanup goroutine.
// Call Stop on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		perMinute: cfg.RequestsPerMinute,
		now:       time.Now,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	go rl.cleanup(cfg.CleanupInterval)
	return rl
}

// Stop terminates the cleanup goroutine and waits for it to exit.
// It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
	<-rl.done
}

// Middleware rejects requests beyond the configured rate with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	retryAfter := strconv.Itoa(60/max(rl.perMinute, 1) + 1)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			w.Header().Set("Retry-After", retryAfter)
			writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Clients returns the number of tracked client buckets.
func (rl *RateLimiter) Clients() int {
	n := 0
	rl.buckets.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (rl *RateLimiter) allow(key string) bool {
	now := rl.now()
	maxTokens := float64(rl.perMinute)

	val, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: maxTokens / 60.0,
		lastSeen:   now,
	})
	return val.(*bucket).take(now)
}

func (b *bucket) take(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.lastSeen).Seconds(); elapsed > 0 {
		b.tokens = min(b.maxTokens, b.tokens+elapsed*b.refillRate)
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	defer close(rl.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastSeen)
		b.mu.Unlock()
		if idle > idleTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

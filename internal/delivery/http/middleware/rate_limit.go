package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Sustained requests per second per key
	RPS float64
	// Requests allowed in a burst
	Burst int
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Idle limiters older than this are dropped
	IdleTTL time.Duration
}

// DefaultRateLimitConfig returns sensible defaults for API rate limiting
func DefaultRateLimitConfig(rps float64, burst int) RateLimitConfig {
	return RateLimitConfig{
		RPS:     rps,
		Burst:   burst,
		IdleTTL: 10 * time.Minute,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

type clientLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter keeps one token bucket per client key.
type ClientLimiter struct {
	mu  sync.Mutex
	m   map[string]*clientLimiter
	r   rate.Limit
	b   int
	ttl time.Duration
	now func() time.Time
}

func NewClientLimiter(cfg RateLimitConfig) *ClientLimiter {
	return &ClientLimiter{
		m:   make(map[string]*clientLimiter),
		r:   rate.Limit(cfg.RPS),
		b:   cfg.Burst,
		ttl: cfg.IdleTTL,
		now: time.Now,
	}
}

func (cl *ClientLimiter) limiterFor(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.now()
	if entry, ok := cl.m[key]; ok {
		entry.lastSeen = now
		return entry.lim
	}
	lim := rate.NewLimiter(cl.r, cl.b)
	cl.m[key] = &clientLimiter{lim: lim, lastSeen: now}
	return lim
}

// Sweep drops limiters that have been idle longer than the TTL.
func (cl *ClientLimiter) Sweep() {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cutoff := cl.now().Add(-cl.ttl)
	for key, entry := range cl.m {
		if entry.lastSeen.Before(cutoff) {
			delete(cl.m, key)
		}
	}
}

// Allow reports whether key may make a request now, and if not, how long to wait.
func (cl *ClientLimiter) Allow(key string) (bool, time.Duration) {
	lim := cl.limiterFor(key)
	res := lim.Reserve()
	if !res.OK() {
		return false, time.Second
	}
	delay := res.Delay()
	if delay > 0 {
		res.Cancel()
		return false, delay
	}
	return true, 0
}

// RateLimitMiddleware creates a rate limiting middleware with the given config.
// A non-positive RPS disables limiting.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.RPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := NewClientLimiter(config)

	var sweepMu sync.Mutex
	lastSweep := time.Now()

	return func(c *gin.Context) {
		sweepMu.Lock()
		if time.Since(lastSweep) > config.IdleTTL {
			lastSweep = time.Now()
			limiter.Sweep()
		}
		sweepMu.Unlock()

		ok, wait := limiter.Allow(config.KeyFunc(c))
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Burst))
		if !ok {
			retryAfter := int(math.Ceil(wait.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("Rate limit exceeded",
				"client_ip", c.ClientIP(),
				"path", c.FullPath(),
				"request_id", c.GetString(response.RequestIDKey),
			)

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const (
	// Auth endpoints take bcrypt work per request, so they get a tight
	// per-client budget.
	defaultAuthRateLimit = rate.Limit(1)
	defaultAuthRateBurst = 5

	limiterIdleEviction = 15 * time.Minute
)

type clientLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiterEntry
	limit   rate.Limit
	burst   int
}

func newClientRateLimiter(limit rate.Limit, burst int) *clientRateLimiter {
	return &clientRateLimiter{
		clients: make(map[string]*clientLimiterEntry),
		limit:   limit,
		burst:   burst,
	}
}

func (limiter *clientRateLimiter) allow(key string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	limiter.evictIdleLocked(now)

	entry, ok := limiter.clients[key]
	if !ok {
		entry = &clientLimiterEntry{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.clients[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.Allow()
}

func (limiter *clientRateLimiter) evictIdleLocked(now time.Time) {
	threshold := now.Add(-limiterIdleEviction)
	for key, entry := range limiter.clients {
		if entry.lastSeen.Before(threshold) {
			delete(limiter.clients, key)
		}
	}
}

func requestLimiterKey(c *fiber.Ctx) string {
	key := strings.TrimSpace(c.IP())
	if key == "" {
		return "unknown"
	}
	return key
}

func (handler *Handler) AuthRateLimit(c *fiber.Ctx) error {
	if !handler.authLimiter.allow(requestLimiterKey(c), time.Now()) {
		return apiError(c, fiber.StatusTooManyRequests, "too many requests")
	}
	return c.Next()
}

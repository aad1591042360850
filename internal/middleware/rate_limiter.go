package middleware

import (
	"net/http"
	"sync"
	"time"

	"amaru/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rateEntry tracks request counts per IP within a fixed window.
type rateEntry struct {
	count     int
	windowEnd time.Time
}

// limiter is one per-IP counter table. Every limiter is registered for the
// purge goroutine.
type limiter struct {
	name    string
	limit   int
	window  time.Duration
	mu      sync.Mutex
	entries map[string]*rateEntry
}

var (
	limiters   []*limiter
	limitersMu sync.Mutex
)

func newLimiter(name string, limit int, window time.Duration) *limiter {
	l := &limiter{name: name, limit: limit, window: window, entries: make(map[string]*rateEntry)}
	limitersMu.Lock()
	limiters = append(limiters, l)
	limitersMu.Unlock()
	return l
}

// allow counts one hit for ip and returns whether it is within the limit
// together with the end of the current window.
func (l *limiter) allow(ip string, now time.Time) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[ip]
	if !ok || now.After(e.windowEnd) {
		e = &rateEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = e
	}
	e.count++
	return e.count <= l.limit, e.windowEnd
}

func (l *limiter) purge(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for ip, e := range l.entries {
		if now.After(e.windowEnd) {
			delete(l.entries, ip)
			n++
		}
	}
	return n
}

func (l *limiter) handler(msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, windowEnd := l.allow(c.ClientIP(), time.Now())
		if !ok {
			c.Header("Retry-After", windowEnd.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(http.StatusTooManyRequests, msg))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter("login", 20, time.Minute).
		handler("Demasiados intentos de login. Intente en 1 minuto.")
}

// RateLimiter returns a general-purpose per-IP limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newLimiter("api", limit, window).
		handler("Demasiadas solicitudes. Intente nuevamente en un momento.")
}

// Periodically removes expired entries so IPs that never return do not accumulate.
const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for now := range ticker.C {
		limitersMu.Lock()
		current := append([]*limiter(nil), limiters...)
		limitersMu.Unlock()

		for _, l := range current {
			if n := l.purge(now); n > 0 {
				log.Debug().Str("limiter", l.name).Int("entries_purged", n).Msg("rate limiter purged")
			}
		}
	}
}

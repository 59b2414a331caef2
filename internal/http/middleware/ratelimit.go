package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientInfo struct {
	last  time.Time
	count int
}

// windowLimiter is an in-process fixed-window counter.
type windowLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	clients map[string]*clientInfo
}

func newWindowLimiter(max int, window time.Duration) *windowLimiter {
	return &windowLimiter{max: max, window: window, clients: make(map[string]*clientInfo)}
}

// allow counts a hit for key and returns the hits in the current window.
func (l *windowLimiter) allow(key string) (bool, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	ci, ok := l.clients[key]
	if !ok || now.Sub(ci.last) > l.window {
		l.clients[key] = &clientInfo{last: now, count: 1}
		l.sweep(now)
		return 1 <= l.max, 1
	}
	ci.count++
	return ci.count <= l.max, ci.count
}

// sweep drops expired windows once the map grows.
func (l *windowLimiter) sweep(now time.Time) {
	if len(l.clients) < 1024 {
		return
	}
	for k, ci := range l.clients {
		if now.Sub(ci.last) > l.window {
			delete(l.clients, k)
		}
	}
}

// SimpleRateLimit blocks clients that send more than maxRequests per window
func SimpleRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	l := newWindowLimiter(maxRequests, window)
	return func(c *gin.Context) {
		if ok, _ := l.allow(c.ClientIP()); !ok {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}

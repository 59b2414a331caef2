package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ActionRateLimit limits game actions per player (not per IP). It counts in
// Redis when configured and in process otherwise. Requires JWT to run first.
func ActionRateLimit(maxActions int, window time.Duration) gin.HandlerFunc {
	local := newWindowLimiter(maxActions, window)

	return func(c *gin.Context) {
		player, ok := Player(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		key := "action_rl:" + player.ID + ":" + strconv.FormatInt(int64(window.Seconds()), 10)
		val, viaRedis := redisHit(c.Request.Context(), key, window)
		if !viaRedis {
			_, n := local.allow(player.ID)
			val = int64(n)
		}

		c.Header("X-ActionRateLimit-Limit", strconv.Itoa(maxActions))
		c.Header("X-ActionRateLimit-Remaining", strconv.FormatInt(max(0, int64(maxActions)-val), 10))

		if val > int64(maxActions) {
			RLBlocked.WithLabelValues("action:" + c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "action rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			return
		}

		RLRequests.WithLabelValues("action:" + c.FullPath()).Inc()
		c.Next()
	}
}

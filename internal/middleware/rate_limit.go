package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"financial-assistant/pkg/response"
)

// RateLimit throttles requests per client IP with a token bucket. Limiters
// are kept in an expiring LRU so idle clients age out instead of leaking.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	if mw.ratePerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limit := rate.Limit(float64(mw.ratePerMin) / 60.0)
	burst := mw.ratePerMin

	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := mw.clientLimiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			mw.clientLimiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			mw.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}

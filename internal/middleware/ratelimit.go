package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/nepsepulse/internal/domain/dto"
	"github.com/guttosm/nepsepulse/internal/ratelimit"
)

// RateLimit gates every request behind a shared token bucket. The bucket is
// global to the process, not per client: the upstream exchange tolerates only
// a small request rate from a single origin, so the facade budgets itself as
// a whole.
//
// Behavior:
//   - Consumes one token before any handler runs.
//   - If the bucket is empty, aborts with 429 and the standard error body.
//
// Usage:
//
//	bucket := ratelimit.NewTokenBucket(4, 2)
//	router.Use(middleware.RateLimit(bucket))
func RateLimit(bucket *ratelimit.TokenBucket) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !bucket.TakeToken() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}

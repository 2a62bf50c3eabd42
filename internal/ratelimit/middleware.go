package ratelimit

import (
	"agent-server/internal/apierrors"
	"agent-server/internal/observability"
	"fmt"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per client IP. scope separates counters
// so one route group cannot exhaust another's budget.
func (s *Service) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		clientIP := observability.GetRealClientIP(c)

		result := s.Check(ctx, scope+":"+clientIP)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			ctx = observability.WithFields(ctx,
				observability.Field{Key: "rate_limit_scope", Value: scope},
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)
			s.logger.Warn(ctx, "rate limit exceeded")
			apierrors.TooManyRequests(c, "Too many requests, please try again later")
			return
		}

		c.Next()
	}
}

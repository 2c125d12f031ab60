package middleware

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"booth-booking/internal/handler/httperr"
	"booth-booking/internal/infra/ratelimit"
	"booth-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errs.Mark(errors.New("rate limit exceeded"), errs.ErrRateLimited)

type RateLimiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
}

// RateLimit throttles per session, falling back to the client IP. A nil limiter or a limiter error lets the request through.
func RateLimit(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if sessionID, ok := GetSessionID(c); ok {
			key = "session:" + sessionID
		}

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable", "key", key, "error", err.Error())
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			secs := int(math.Ceil(decision.RetryAfter.Seconds()))
			if secs < 0 {
				secs = 0
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.KindRateLimited, errRateLimited, "Too many hold requests, slow down")
			return
		}
		c.Next()
	}
}

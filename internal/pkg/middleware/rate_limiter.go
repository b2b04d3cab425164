package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/utils"
)

// RateLimiterConfig contains configuration for the Redis-backed rate
// limiter.
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // key prefix
	Limit       int           // maximum number of requests
	Period      time.Duration // window for the limit
}

// RateLimiterMiddleware limits request rates per client (authenticated
// user id when available, client IP otherwise). With no Redis client it
// is a pass-through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.RedisClient == nil {
				return next(c)
			}

			identifier := c.RealIP()
			if userID := UserIDFromContext(c); userID != 0 {
				identifier = strconv.FormatInt(userID, 10)
			}

			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			count, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				// Redis trouble must not take the API down.
				return next(c)
			}
			if count == 1 {
				config.RedisClient.Expire(ctx, key, config.Period)
			}

			if count > int64(config.Limit) {
				ttl, _ := config.RedisClient.TTL(ctx, key).Result()
				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

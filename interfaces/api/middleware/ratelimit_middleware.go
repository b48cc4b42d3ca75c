package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"taskmanager/infrastructure/redis"
	"taskmanager/pkg/config"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

// RateLimit throttles requests per client IP using the Redis sliding
// window. A nil limiter or a Redis fault lets requests through; the
// limiter protects against abuse, it must not take the API down with it.
func RateLimit(limiter *redis.Limiter, cfg config.RateLimitConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil || !cfg.Enabled {
			return c.Next()
		}

		result, err := limiter.Allow(c.UserContext(), c.IP(), cfg.Requests, cfg.Window)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Rate limiter unavailable", "error", err)
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int(time.Until(result.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set("Retry-After", strconv.Itoa(retryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(utils.MessageResponse{
				Message: "Too many requests, please try again later",
			})
		}

		return c.Next()
	}
}

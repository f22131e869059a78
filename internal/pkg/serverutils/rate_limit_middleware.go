// FILE: internal/pkg/serverutils/rate_limit_middleware.go
package serverutils

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware enforces a fixed-window per-caller request cap backed
// by redis. The caller key is the X-Caller-Id header when the gateway
// forwards it, falling back to the client IP. A nil client disables the
// limiter (local development without redis).
func RateLimitMiddleware(client *redis.Client, limit int, window time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if client == nil || limit <= 0 {
			return ctx.Next()
		}

		caller := ctx.Get("X-Caller-Id")
		if caller == "" {
			caller = ctx.IP()
		}
		key := fmt.Sprintf("ratelimit:%s", caller)

		count, err := client.Incr(ctx.Context(), key).Result()
		if err != nil {
			// Redis being down should not take the chatbot down with it.
			return ctx.Next()
		}
		if count == 1 {
			client.Expire(ctx.Context(), key, window)
		}
		if count > int64(limit) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many requests"})
		}

		return ctx.Next()
	}
}

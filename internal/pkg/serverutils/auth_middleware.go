// FILE: internal/pkg/serverutils/auth_middleware.go
package serverutils

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// ApiSecretMiddleware guards the message processing endpoints with a shared
// bearer secret. The gateway (WhatsApp bridge) is the only expected caller.
func ApiSecretMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}
		token := authHeader[7:]
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}
		return ctx.Next()
	}
}

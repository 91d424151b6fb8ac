package middleware

import (
	"crypto/subtle"

	"survey-console/internal/domain"
	"survey-console/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	APIKeyHeader = "X-API-Key"
	APIKeyIDKey  = "apiKeyIndex" // Key for storing the matched key index in fiber.Ctx locals
)

// RequireAPIKey protects routes with a static API key sent in X-API-Key.
// With no keys configured every request is rejected.
func RequireAPIKey(keys []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Get(APIKeyHeader)
		if provided == "" {
			return domain.NewUnauthorizedError("API key is missing")
		}

		for i, key := range keys {
			if key != "" && subtle.ConstantTimeCompare([]byte(provided), []byte(key)) == 1 {
				c.Locals(APIKeyIDKey, i)
				return c.Next()
			}
		}

		logger.Get().Warn("Rejected request with unknown API key",
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		return domain.NewUnauthorizedError("API key is not valid")
	}
}

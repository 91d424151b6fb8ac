package middleware

import (
	"strings"

	"survey-console/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const maxIDLength = 26

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// ValidateID rejects a malformed :id path parameter before it reaches a handler.
func (vm *ValidationMiddleware) ValidateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params("id"))
		if id == "" {
			return domain.ValidationErrors{"id": domain.MsgRequiredField}
		}
		if len(id) > maxIDLength || !isAlphanumeric(id) {
			return domain.ValidationErrors{"id": domain.MsgInvalidOption}
		}

		// Store validated value in context for handlers to use
		c.Locals("validated_id", id)
		return c.Next()
	}
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		default:
			return false
		}
	}
	return true
}

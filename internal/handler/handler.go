package handler

import (
	"strings"

	"survey-console/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// pathID returns the :id parameter, preferring the value checked by the validation middleware.
func pathID(c *fiber.Ctx) string {
	if id, ok := c.Locals("validated_id").(string); ok && id != "" {
		return id
	}
	return strings.TrimSpace(c.Params("id"))
}

// parseBody decodes the JSON request body into out.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON").WithContext("error", err.Error())
	}
	return nil
}

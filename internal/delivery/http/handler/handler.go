package handler

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/forest-management-gis/internal/pkg/errors"
	"github.com/forest-management-gis/internal/pkg/validator"
)

// parseBody разбирает JSON тела запроса и валидирует его теги
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}
	return validator.Validate(dst)
}

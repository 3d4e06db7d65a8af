package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/forest-management-gis/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// SendSuccess - документ или список документов без обёртки: клиенты работают с ресурсом напрямую
func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func SendMessage(c *fiber.Ctx, message string) error {
	return c.JSON(MessageResponse{Message: message})
}

// SendFile - отдача сгенерированного файла как вложения
func SendFile(c *fiber.Ctx, filename, contentType string, content []byte) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(content)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

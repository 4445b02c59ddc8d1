package utils

import (
	"media-fetcher-go/models"

	"github.com/gofiber/fiber/v2"
)

// Fail returns a JSON failure response
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		OK:    false,
		Error: message,
	})
}

// BadRequest returns a 400 failure
func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message)
}

// InternalError returns a 500 failure
func InternalError(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusInternalServerError, message)
}

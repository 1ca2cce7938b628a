package presenters

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, data any, status int) error {
	return c.Status(status).JSON(data)
}

func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil && err.Error() != message {
		message = fmt.Sprintf("%s: %s", message, err.Error())
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

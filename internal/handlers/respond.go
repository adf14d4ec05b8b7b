package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"bodima/internal/apperrors"
)

// success writes the uniform success envelope, merging any extra data fields.
func success(c *fiber.Ctx, status int, message string, data fiber.Map) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range data {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// fail maps an error to the failure envelope. Application errors carry their
// own status and client-safe message; anything else is logged and reported
// as a generic server error so internals never leak into the response.
func fail(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Kind != apperrors.KindInternal {
		return c.Status(appErr.Status()).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	}

	log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Server error. Please try again.",
	})
}

// paramID parses the :id route parameter as an unsigned integer.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, apperrors.NewValidation("Invalid id!")
	}
	return uint(id), nil
}

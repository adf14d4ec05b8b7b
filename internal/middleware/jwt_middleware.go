package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"bodima/internal/services"
)

// AuthRequired is a Fiber middleware that checks for a valid session token.
// The token is read from the session cookie, falling back to a Bearer
// Authorization header. An absent token is 401; a present but failing one
// is 403, matching the verify endpoint.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("token")
		if token == "" {
			if parts := strings.SplitN(c.Get("Authorization"), " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized - No token provided!",
			})
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Invalid token!",
			})
		}

		// Claims are available to downstream handlers.
		c.Locals("id", claims["id"])
		c.Locals("email", claims["email"])
		return c.Next()
	}
}

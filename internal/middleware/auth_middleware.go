package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"estatedesk_backend/pkg/utils/jwt"
)

// AuthMiddleware validates the Bearer token and stores its claims in
// c.Locals("user") for downstream handlers.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFromHeader(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or invalid authorization token",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present but lets
// anonymous requests through. Used by the inquiry form so logged-in
// submitters get linked to their account.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, err := claimsFromHeader(c); err == nil {
			c.Locals("user", claims)
		}
		return c.Next()
	}
}

// RequireAdmin gates admin-only routes on the session role claim.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*jwt.Claims)
		if !ok || claims.Role != jwt.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
		return c.Next()
	}
}

func claimsFromHeader(c *fiber.Ctx) (*jwt.Claims, error) {
	header := c.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return nil, fiber.ErrUnauthorized
	}
	return jwt.ValidateToken(token)
}

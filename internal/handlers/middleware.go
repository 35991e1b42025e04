package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"inventori/internal/services"
)

const ownerIDKey = "ownerID"

// AuthRequired validates the bearer token and threads the resolved owner ID
// through the request context. Handlers read it back via OwnerID; there is
// no ambient current-user state anywhere else.
func AuthRequired(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "missing bearer token"})
		}
		claims, err := authService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "invalid or expired token"})
		}
		c.Locals(ownerIDKey, claims.UserID)
		return c.Next()
	}
}

func OwnerID(c *fiber.Ctx) uint {
	if id, ok := c.Locals(ownerIDKey).(uint); ok {
		return id
	}
	return 0
}

package auth

import (
	"strings"

	"github.com/seoforge/seoforge/internal/response"
	"github.com/seoforge/seoforge/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// JWTProtected guards the generate, publish and media routes. A missing
// token is 401, a present-but-bad token is 403.
func JWTProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_REQUIRED", "Missing authorization token")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return response.Unauthorized(c, "TOKEN_REQUIRED", "Invalid token format")
		}

		username, err := utils.ParseJWT(tokenParts[1])
		if err != nil {
			return response.Forbidden(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Locals("username", username)
		return c.Next()
	}
}

package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/staffdir/internal/services"
	"github.com/localnerve/staffdir/internal/types"
)

// AuthUser validates the session cookie and stores the live session in the
// request context. The directory pipeline only runs behind this guard.
func AuthUser(auth *services.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(auth.CookieName())
		if cookie == "" {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Please log in",
				Type:    "directory.authorization.user",
			}
		}

		session, err := auth.Validate(cookie)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: fmt.Sprintf("Invalid session: %v", err),
				Type:    "directory.authorization.user",
			}
		}

		c.Locals("session", session)

		return c.Next()
	}
}

package middleware

import (
	"steptember/backend/config"
	"steptember/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware resolves the session cookie. Anonymous or stale sessions are
// sent back to the login page rather than served an error.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ParseSessionToken(c.Cookies(utils.SessionCookie), cfg)
		if err != nil {
			return c.Redirect("/login")
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}

// SessionUserID returns the user id stashed by AuthMiddleware.
func SessionUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("user_id").(uint); ok {
		return id
	}
	return 0
}

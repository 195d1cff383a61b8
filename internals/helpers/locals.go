package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUsername = "username"
	LocRole     = "role"
	LocUserCode = "user_code"
)

// GetUsernameFromLocals returns the authenticated username, or "" when the
// request carried no valid token.
func GetUsernameFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUsername).(string); ok {
		return v
	}
	return ""
}

func GetRoleFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return v
	}
	return ""
}

func GetUserCodeFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserCode).(string); ok {
		return v
	}
	return ""
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/thebeat-edu/beat-go-api/internal/models"
)

const identityKey = "request_user"

// Identity reads the best-effort identity headers sent by the front end.
// There is no authentication; a request without headers simply carries no
// identity and downstream code falls back to the session user or anonymous.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get("X-User-ID"))
		if id == "" {
			return c.Next()
		}

		role := models.UserRole(strings.TrimSpace(c.Get("X-User-Role")))
		if role != models.RoleTeacher && role != models.RoleStudent {
			role = models.RoleStudent
		}

		c.Locals(identityKey, models.User{
			ID:   id,
			Name: strings.TrimSpace(c.Get("X-User-Name")),
			Role: role,
		})
		return c.Next()
	}
}

// RequestUser returns the identity attached to the request, if any.
func RequestUser(c *fiber.Ctx) (models.User, bool) {
	if c == nil {
		return models.User{}, false
	}
	user, ok := c.Locals(identityKey).(models.User)
	return user, ok
}

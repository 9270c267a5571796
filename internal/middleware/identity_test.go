package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/thebeat-edu/beat-go-api/internal/models"
)

func TestIdentityReadsHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(Identity())

	var captured models.User
	var ok bool
	app.Get("/", func(c *fiber.Ctx) error {
		captured, ok = RequestUser(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "student-9")
	req.Header.Set("X-User-Name", "Riley Chen")
	req.Header.Set("X-User-Role", "teacher")

	_, err := app.Test(req)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "student-9", captured.ID)
	require.Equal(t, "Riley Chen", captured.Name)
	require.Equal(t, models.RoleTeacher, captured.Role)
}

func TestIdentityDefaultsRoleToStudent(t *testing.T) {
	app := fiber.New()
	app.Use(Identity())

	var captured models.User
	app.Get("/", func(c *fiber.Ctx) error {
		captured, _ = RequestUser(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "student-9")
	req.Header.Set("X-User-Role", "principal")

	_, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, models.RoleStudent, captured.Role)
}

func TestIdentityAbsentHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(Identity())

	var ok bool
	app.Get("/", func(c *fiber.Ctx) error {
		_, ok = RequestUser(c)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.False(t, ok)
}

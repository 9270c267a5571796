package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/handler"
	"github.com/thebeat-edu/beat-go-api/internal/service"
)

func newSessionApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := service.NewSessionService(newTestStore(t), validator.New(), testLogger())

	app := fiber.New()
	handler.NewSessionHandler(svc, testLogger()).Register(app.Group("/api/v1/session"))
	return app
}

func TestSessionHandler_DefaultsToAnonymous(t *testing.T) {
	app := newSessionApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/v1/session", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data dto.SessionResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, "anonymous", body.Data.ID)
	require.Equal(t, "Anonymous Student", body.Data.Name)
}

func TestSessionHandler_SetAndClear(t *testing.T) {
	app := newSessionApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/v1/session", dto.SessionRequest{
		ID:   "teacher-1",
		Name: "Morgan Diaz",
		Role: "teacher",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data dto.SessionResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, "Morgan Diaz", body.Data.Name)

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/v1/session", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/v1/session", nil))
	require.NoError(t, err)
	decodeResponse(t, resp, &body)
	require.Equal(t, "anonymous", body.Data.ID)
}

func TestSessionHandler_RejectsUnknownRole(t *testing.T) {
	app := newSessionApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/v1/session", dto.SessionRequest{
		ID:   "x",
		Name: "X",
		Role: "admin",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

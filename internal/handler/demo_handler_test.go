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

func newDemoApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := service.NewDemoService(newTestStore(t), validator.New(), testLogger())

	app := fiber.New()
	handler.NewDemoHandler(svc, testLogger()).Register(app.Group("/api/v1/demo"))
	return app
}

func TestDemoHandler_SwitchMode(t *testing.T) {
	app := newDemoApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/v1/demo/mode", dto.DemoModeRequest{Mode: "accumulated"}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data dto.DemoStateResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, "accumulated", body.Data.Mode)
}

func TestDemoHandler_RejectsUnknownMode(t *testing.T) {
	app := newDemoApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/v1/demo/mode", dto.DemoModeRequest{Mode: "replay"}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDemoHandler_State(t *testing.T) {
	app := newDemoApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/v1/demo", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data dto.DemoStateResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, "fresh", body.Data.Mode)
}

package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/handler"
	"github.com/thebeat-edu/beat-go-api/internal/models"
	"github.com/thebeat-edu/beat-go-api/internal/service"
)

func newClassroomApp(t *testing.T) *fiber.App {
	t.Helper()
	st := newTestStore(t)
	svc := service.NewClassroomService(st, validator.New(), testLogger())

	app := fiber.New()
	handler.NewClassroomHandler(svc, testLogger()).Register(app.Group("/api/v1/classrooms"))
	return app
}

func TestClassroomHandler_CreateAndJoin(t *testing.T) {
	app := newClassroomApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/classrooms", dto.ClassroomCreateRequest{
		TopicID: "ai-ethics",
		Title:   "AI and Society",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Success bool             `json:"success"`
		Data    models.Classroom `json:"data"`
	}
	decodeResponse(t, resp, &created)
	require.True(t, created.Success)
	require.NotEmpty(t, created.Data.ShareCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/v1/classrooms/join", dto.ClassroomJoinRequest{
		ShareCode: created.Data.ShareCode,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var joined struct {
		Data models.Classroom `json:"data"`
	}
	decodeResponse(t, resp, &joined)
	require.Equal(t, created.Data.ID, joined.Data.ID)
}

func TestClassroomHandler_CreateValidation(t *testing.T) {
	app := newClassroomApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/classrooms", dto.ClassroomCreateRequest{
		TopicID: "ai-ethics",
		Title:   "no",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestClassroomHandler_JoinUnknownCode(t *testing.T) {
	app := newClassroomApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/classrooms/join", dto.ClassroomJoinRequest{
		ShareCode: "NOPE-0000",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestClassroomHandler_LookupByShareCode(t *testing.T) {
	app := newClassroomApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/v1/classrooms?shareCode=climate-2026", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data models.Classroom `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, "climate-change", body.Data.ID)
}

func TestClassroomHandler_GetMissing(t *testing.T) {
	app := newClassroomApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/v1/classrooms/missing", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestClassroomHandler_ListIncludesDemoClassroom(t *testing.T) {
	app := newClassroomApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/v1/classrooms", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Classroom `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Len(t, body.Data, 1)
	require.Equal(t, "climate-change", body.Data[0].TopicID)
}

package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/thebeat-edu/beat-go-api/internal/handler"
)

func TestInfactoryProxyInjectsAPIKey(t *testing.T) {
	var gotKey, gotPath, gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(upstream.Close)

	app := fiber.New()
	app.All("/api/infactory/*", handler.InfactoryProxy(upstream.URL, "secret-key", testLogger()))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/infactory/topics?limit=5", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(body))

	require.Equal(t, "secret-key", gotKey)
	require.Equal(t, "/topics", gotPath)
	require.Equal(t, "limit=5", gotQuery)
}

func TestInfactoryProxyUpstreamDown(t *testing.T) {
	app := fiber.New()
	app.All("/api/infactory/*", handler.InfactoryProxy("http://127.0.0.1:1", "secret-key", testLogger()))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/infactory/search", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

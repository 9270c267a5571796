package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/thebeat-edu/beat-go-api/internal/persistence"
	"github.com/thebeat-edu/beat-go-api/internal/store"
)

type nopPersister struct {
	mu      sync.Mutex
	payload []byte
}

func (p *nopPersister) Save(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payload = append([]byte(nil), payload...)
	return nil
}

func (p *nopPersister) Load(_ context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.payload == nil {
		return nil, persistence.ErrNotFound
	}
	return append([]byte(nil), p.payload...), nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(&nopPersister{}, zerolog.Nop())
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	return req
}

func decodeResponse(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

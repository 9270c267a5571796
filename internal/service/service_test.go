package service

import (
	"context"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/thebeat-edu/beat-go-api/internal/persistence"
	"github.com/thebeat-edu/beat-go-api/internal/store"
)

type stubPersister struct {
	mu      sync.Mutex
	payload []byte
}

func (p *stubPersister) Save(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payload = append([]byte(nil), payload...)
	return nil
}

func (p *stubPersister) Load(_ context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.payload == nil {
		return nil, persistence.ErrNotFound
	}
	return append([]byte(nil), p.payload...), nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(&stubPersister{}, zerolog.Nop())
}

func testValidator() *validator.Validate {
	return validator.New()
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

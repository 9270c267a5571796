// Package persistence stores the serialized application snapshot as a single
// named record in a durable key-value backend.
package persistence

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no snapshot has been stored yet.
var ErrNotFound = errors.New("no snapshot stored")

// Persister saves and loads the one snapshot record. Implementations must
// treat the payload as opaque bytes.
type Persister interface {
	Save(ctx context.Context, payload []byte) error
	Load(ctx context.Context) ([]byte, error)
}

package persistence

import (
	"context"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisPersisterRoundTrip(t *testing.T) {
	mini, err := miniredis.Run()
	require.NoError(t, err)
	defer mini.Close()

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	persister, err := NewRedisPersister(client, "beat:snapshot")
	require.NoError(t, err)

	ctx := context.Background()

	_, err = persister.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, persister.Save(ctx, []byte(`{"version":2}`)))

	payload, err := persister.Load(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `{"version":2}`, string(payload))
}

func TestRedisPersisterRequiresClientAndKey(t *testing.T) {
	_, err := NewRedisPersister(nil, "key")
	require.Error(t, err)

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	_, err = NewRedisPersister(client, "")
	require.Error(t, err)
}

func TestFilePersisterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "snapshot.json")
	persister, err := NewFilePersister(path)
	require.NoError(t, err)

	ctx := context.Background()

	_, err = persister.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, persister.Save(ctx, []byte("first")))
	require.NoError(t, persister.Save(ctx, []byte("second")))

	payload, err := persister.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "second", string(payload))
}

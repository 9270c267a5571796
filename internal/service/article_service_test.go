package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/store"
	"github.com/thebeat-edu/beat-go-api/pkg/infactory"
)

type upstreamPayload struct {
	Data struct {
		Results []infactory.SearchResult `json:"results"`
	} `json:"data"`
}

func newArticleFixture(t *testing.T, results []infactory.SearchResult) (ArticleService, *store.Store, *int) {
	t.Helper()

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var payload upstreamPayload
		payload.Data.Results = results
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)

	client, err := infactory.New(infactory.Config{BaseURL: server.URL, APIKey: "k", Logger: zerolog.Nop()})
	require.NoError(t, err)

	mini, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mini.Close)

	cache := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = cache.Close() })

	st := newTestStore(t)
	svc := NewArticleService(client, st, cache, time.Minute, testValidator(), testLogger())
	return svc, st, &calls
}

func TestArticleSearchCachesResults(t *testing.T) {
	svc, _, calls := newArticleFixture(t, []infactory.SearchResult{
		{Chunk: infactory.ArticleChunk{ChunkID: "1:1", Title: "Climate and the City"}},
	})

	first, err := svc.Search(context.Background(), dto.ArticleSearchRequest{Query: "climate"})
	require.NoError(t, err)
	require.False(t, first.CacheHit)
	require.Len(t, first.Results, 1)

	second, err := svc.Search(context.Background(), dto.ArticleSearchRequest{Query: "climate"})
	require.NoError(t, err)
	require.True(t, second.CacheHit)
	require.Len(t, second.Results, 1)
	require.Equal(t, 1, *calls)
}

func TestArticleSearchAppliesClassroomExclusions(t *testing.T) {
	svc, st, _ := newArticleFixture(t, []infactory.SearchResult{
		{Chunk: infactory.ArticleChunk{ChunkID: "1:1", Title: "Climate and the City"}},
		{Chunk: infactory.ArticleChunk{ChunkID: "2:1", Title: "An Opinion on Weather", Excerpt: "hot takes"}},
	})

	classroom := st.CreateClassroom(store.ClassroomConfig{
		TopicID:          "climate-change",
		Title:            "Climate Unit",
		ExcludedKeywords: []string{"opinion"},
	})
	st.SetCurrentClassroom(&classroom)

	result, err := svc.Search(context.Background(), dto.ArticleSearchRequest{Query: "climate"})
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	require.Equal(t, "1:1", result.Results[0].Chunk.ChunkID)
}

func TestArticleSearchRejectsEmptyQuery(t *testing.T) {
	svc, _, calls := newArticleFixture(t, nil)

	_, err := svc.Search(context.Background(), dto.ArticleSearchRequest{})
	require.Error(t, err)
	require.Zero(t, *calls)
}

func TestArticleSearchWorksWithoutCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload upstreamPayload
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)

	client, err := infactory.New(infactory.Config{BaseURL: server.URL, APIKey: "k", Logger: zerolog.Nop()})
	require.NoError(t, err)

	svc := NewArticleService(client, newTestStore(t), nil, 0, testValidator(), testLogger())
	result, err := svc.Search(context.Background(), dto.ArticleSearchRequest{Query: "anything"})
	require.NoError(t, err)
	require.False(t, result.CacheHit)
	require.Empty(t, result.Results)
}

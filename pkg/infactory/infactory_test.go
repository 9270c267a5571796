package infactory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{BaseURL: server.URL, APIKey: "test-key", Logger: zerolog.Nop()})
	require.NoError(t, err)
	return client
}

func TestNewRequiresBaseURLAndKey(t *testing.T) {
	_, err := New(Config{APIKey: "k"})
	require.Error(t, err)
	_, err = New(Config{BaseURL: "http://localhost"})
	require.Error(t, err)
}

func TestSearchSendsDefaultsAndAPIKey(t *testing.T) {
	var captured searchRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(searchResponse{
			Data: struct {
				Results []SearchResult `json:"results"`
			}{Results: []SearchResult{{Score: 0.9, Chunk: ArticleChunk{ChunkID: "676065:1", Title: "This Is the New Baseline Earth"}}}},
		})
	})

	results, err := client.Search(context.Background(), "climate change", SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "676065:1", results[0].Chunk.ChunkID)

	require.Equal(t, "climate change", captured.Query)
	require.Equal(t, 10, captured.TopK)
	require.Equal(t, "hybrid", captured.Mode)
}

func TestSearchSurfacesUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(searchResponse{Error: &apiError{Message: "rate limited"}})
	})

	_, err := client.Search(context.Background(), "q", SearchOptions{})
	require.ErrorContains(t, err, "rate limited")
}

func TestSearchRejectsNon200(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Search(context.Background(), "q", SearchOptions{})
	require.ErrorContains(t, err, "502")
}

func TestTopics(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/topics", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		_ = json.NewEncoder(w).Encode(topicsResponse{
			Data: struct {
				Topics []string `json:"topics"`
			}{Topics: []string{"climate", "technology"}},
		})
	})

	topics, err := client.Topics(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"climate", "technology"}, topics)
}

func TestByChunkIDsFiltersBroadSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "*", req.Query)
		require.Equal(t, 100, req.TopK)
		require.Equal(t, "keyword", req.Mode)

		_ = json.NewEncoder(w).Encode(searchResponse{
			Data: struct {
				Results []SearchResult `json:"results"`
			}{Results: []SearchResult{
				{Chunk: ArticleChunk{ChunkID: "a"}},
				{Chunk: ArticleChunk{ChunkID: "b"}},
				{Chunk: ArticleChunk{ChunkID: "c"}},
			}},
		})
	})

	results, err := client.ByChunkIDs(context.Background(), []string{"c", "a"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "a", results[0].Chunk.ChunkID)
	require.Equal(t, "c", results[1].Chunk.ChunkID)
}

func TestByChunkIDsEmptyInput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	results, err := client.ByChunkIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, results)
}

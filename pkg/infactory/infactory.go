// Package infactory is a thin client for the Infactory archive API that
// serves The Atlantic's article corpus. The upstream is consumed as a black
// box: the client only ever reads chunk metadata, never article bodies.
package infactory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 15 * time.Second

// ArticleChunk is one indexed slice of an article.
type ArticleChunk struct {
	ChunkID     string `json:"chunk_id"`
	ArticleID   int    `json:"article_id"`
	Title       string `json:"title"`
	PublishedAt string `json:"published_at"`
	Author      string `json:"author"`
	Section     string `json:"section"`
	Topic       string `json:"topic"`
	Excerpt     string `json:"excerpt"`
}

// SearchResult is one scored hit.
type SearchResult struct {
	Score    float64      `json:"score"`
	Chunk    ArticleChunk `json:"chunk"`
	RRFScore float64      `json:"rrf_score"`
}

// SearchFilters restricts a search to slices of the corpus.
type SearchFilters struct {
	Topics   []string `json:"topics,omitempty"`
	Authors  []string `json:"authors,omitempty"`
	Sections []string `json:"sections,omitempty"`
	DateFrom string   `json:"date_from,omitempty"`
	DateTo   string   `json:"date_to,omitempty"`
}

// SearchOptions tunes a search request. Zero values fall back to the
// upstream defaults used by the front end: hybrid mode, ten results.
type SearchOptions struct {
	TopK    int
	Mode    string
	Rerank  bool
	Filters SearchFilters
}

type searchRequest struct {
	Query   string         `json:"query"`
	TopK    int            `json:"top_k"`
	Mode    string         `json:"mode"`
	Rerank  bool           `json:"rerank"`
	Filters SearchFilters  `json:"filters"`
	Include map[string]any `json:"include"`
}

type apiError struct {
	Message string `json:"message"`
}

type searchResponse struct {
	RequestID string `json:"request_id"`
	Data      struct {
		Results []SearchResult `json:"results"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

type topicsResponse struct {
	RequestID string `json:"request_id"`
	Data      struct {
		Topics []string `json:"topics"`
	} `json:"data"`
	Error *apiError `json:"error"`
}

// Config defines client construction options.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Client talks to the Infactory API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  zerolog.Logger
}

// New constructs a client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("infactory base url is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("infactory api key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		logger:  cfg.Logger.With().Str("component", "infactory_client").Logger(),
	}, nil
}

// Search queries the corpus by free text.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error) {
	if opts.TopK <= 0 {
		opts.TopK = 10
	}
	if opts.Mode == "" {
		opts.Mode = "hybrid"
	}

	body := searchRequest{
		Query:   query,
		TopK:    opts.TopK,
		Mode:    opts.Mode,
		Rerank:  opts.Rerank,
		Filters: opts.Filters,
		Include: map[string]any{"chunk_excerpt": true, "embedding": false},
	}

	var response searchResponse
	if err := c.post(ctx, "/search", body, &response); err != nil {
		return nil, err
	}
	if response.Error != nil {
		return nil, fmt.Errorf("infactory search failed: %s", response.Error.Message)
	}
	return response.Data.Results, nil
}

// Topics lists the topic labels available in the corpus.
func (c *Client) Topics(ctx context.Context) ([]string, error) {
	var response topicsResponse
	if err := c.get(ctx, "/topics", &response); err != nil {
		return nil, err
	}
	if response.Error != nil {
		return nil, fmt.Errorf("infactory topics failed: %s", response.Error.Message)
	}
	return response.Data.Topics, nil
}

// ByChunkIDs resolves specific chunks. The upstream has no get-by-id
// endpoint, so this runs a broad keyword search and filters the result set
// down to the requested ids.
func (c *Client) ByChunkIDs(ctx context.Context, chunkIDs []string) ([]SearchResult, error) {
	if len(chunkIDs) == 0 {
		return nil, nil
	}

	results, err := c.Search(ctx, "*", SearchOptions{TopK: 100, Mode: "keyword"})
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(chunkIDs))
	for _, id := range chunkIDs {
		wanted[id] = true
	}

	matched := make([]SearchResult, 0, len(chunkIDs))
	for _, result := range results {
		if wanted[result.Chunk.ChunkID] {
			matched = append(matched, result)
		}
	}
	return matched, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("infactory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Str("path", req.URL.Path).Msg("infactory returned non-200")
		return fmt.Errorf("infactory responded with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode infactory response: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
	"github.com/thebeat-edu/beat-go-api/internal/observability"
	"github.com/thebeat-edu/beat-go-api/internal/store"
	"github.com/thebeat-edu/beat-go-api/pkg/infactory"
)

// ArticleService searches the archive on behalf of students. Results pass
// through the current classroom's excluded-keyword filter before they are
// returned.
type ArticleService interface {
	Search(ctx context.Context, payload dto.ArticleSearchRequest) (dto.ArticleSearchResponse, error)
	Topics(ctx context.Context) ([]string, error)
}

type articleService struct {
	client    *infactory.Client
	store     *store.Store
	cache     *redis.Client
	ttl       time.Duration
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewArticleService constructs the article service. The cache client may be
// nil, in which case every search goes upstream.
func NewArticleService(client *infactory.Client, st *store.Store, cache *redis.Client, ttl time.Duration, validator *validator.Validate, logger zerolog.Logger) ArticleService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &articleService{
		client:    client,
		store:     st,
		cache:     cache,
		ttl:       ttl,
		validator: validator,
		logger:    logger.With().Str("component", "article_service").Logger(),
	}
}

func (s *articleService) Search(ctx context.Context, payload dto.ArticleSearchRequest) (dto.ArticleSearchResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ArticleSearchResponse{}, err
	}

	tracer := otel.Tracer("github.com/thebeat-edu/beat-go-api/internal/service/article")
	ctx, span := tracer.Start(ctx, "articles.search")
	defer span.End()
	span.SetAttributes(
		attribute.String("search.query", payload.Query),
		attribute.String("search.mode", payload.Mode),
		attribute.Int("search.top_k", payload.TopK),
	)

	start := time.Now()
	defer func() {
		observability.ArticleSearchLatency().Observe(time.Since(start).Seconds())
	}()

	cacheKey := ""
	if s.cache != nil {
		cacheKey = searchCacheKey(payload)
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var results []infactory.SearchResult
			if err := json.Unmarshal([]byte(cached), &results); err == nil {
				observability.ArticleSearchRequests().WithLabelValues("hit").Inc()
				span.SetAttributes(attribute.Bool("search.cache_hit", true))
				return dto.ArticleSearchResponse{Results: s.applyExclusions(results), CacheHit: true}, nil
			}
		}
	}
	span.SetAttributes(attribute.Bool("search.cache_hit", false))

	results, err := s.client.Search(ctx, payload.Query, infactory.SearchOptions{
		TopK: payload.TopK,
		Mode: payload.Mode,
		Filters: infactory.SearchFilters{
			Topics:   payload.Topics,
			Authors:  payload.Authors,
			Sections: payload.Sections,
			DateFrom: payload.DateFrom,
			DateTo:   payload.DateTo,
		},
	})
	if err != nil {
		observability.ArticleSearchRequests().WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "archive search failed")
		return dto.ArticleSearchResponse{}, err
	}

	if cacheKey != "" {
		if encoded, err := json.Marshal(results); err == nil {
			if err := s.cache.Set(ctx, cacheKey, encoded, s.ttl).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to cache search results")
			}
		}
	}

	observability.ArticleSearchRequests().WithLabelValues("miss").Inc()
	return dto.ArticleSearchResponse{Results: s.applyExclusions(results)}, nil
}

func (s *articleService) Topics(ctx context.Context) ([]string, error) {
	return s.client.Topics(ctx)
}

// applyExclusions drops hits whose title or excerpt matches an excluded
// keyword of the current classroom. Exclusions are applied after caching, so
// cached entries stay classroom-neutral.
func (s *articleService) applyExclusions(results []infactory.SearchResult) []infactory.SearchResult {
	classroom, ok := s.store.CurrentClassroom()
	if !ok || len(classroom.ExcludedKeywords) == 0 {
		return results
	}

	filtered := make([]infactory.SearchResult, 0, len(results))
	for _, result := range results {
		if matchesKeyword(result, classroom.ExcludedKeywords) {
			continue
		}
		filtered = append(filtered, result)
	}
	return filtered
}

func matchesKeyword(result infactory.SearchResult, keywords []string) bool {
	title := strings.ToLower(result.Chunk.Title)
	excerpt := strings.ToLower(result.Chunk.Excerpt)
	for _, keyword := range keywords {
		needle := strings.ToLower(strings.TrimSpace(keyword))
		if needle == "" {
			continue
		}
		if strings.Contains(title, needle) || strings.Contains(excerpt, needle) {
			return true
		}
	}
	return false
}

func searchCacheKey(payload dto.ArticleSearchRequest) string {
	parts := []string{
		payload.Query,
		payload.Mode,
		strings.Join(payload.Topics, "|"),
		strings.Join(payload.Authors, "|"),
		strings.Join(payload.Sections, "|"),
		payload.DateFrom,
		payload.DateTo,
	}
	return fmt.Sprintf("articles:search:v1:%d:%s", payload.TopK, strings.Join(parts, ":"))
}

package dto

import "github.com/thebeat-edu/beat-go-api/pkg/infactory"

// ArticleSearchRequest describes an archive search.
type ArticleSearchRequest struct {
	Query    string   `json:"query" validate:"required,min=1"`
	TopK     int      `json:"topK" validate:"omitempty,min=1,max=100"`
	Mode     string   `json:"mode" validate:"omitempty,oneof=hybrid keyword vector"`
	Topics   []string `json:"topics"`
	Authors  []string `json:"authors"`
	Sections []string `json:"sections"`
	DateFrom string   `json:"dateFrom" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string   `json:"dateTo" validate:"omitempty,datetime=2006-01-02"`
}

// ArticleSearchResponse wraps the hits with cache provenance.
type ArticleSearchResponse struct {
	Results  []infactory.SearchResult `json:"results"`
	CacheHit bool                     `json:"cacheHit"`
}

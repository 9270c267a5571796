package models

import "time"

// ArticleViewRecord is one open/close reading interval for an article. A nil
// ClosedAt means the article is still open.
type ArticleViewRecord struct {
	ArticleID string     `json:"articleId"`
	OpenedAt  time.Time  `json:"openedAt"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
}

// Duration returns the length of the interval, using now for intervals that
// are still open.
func (r ArticleViewRecord) Duration(now time.Time) time.Duration {
	end := now
	if r.ClosedAt != nil {
		end = *r.ClosedAt
	}
	return end.Sub(r.OpenedAt)
}

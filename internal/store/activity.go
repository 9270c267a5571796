package store

import (
	"time"

	"github.com/thebeat-edu/beat-go-api/internal/models"
)

// RecordArticleOpen starts a reading interval for the article. If an open
// interval already exists for this article the call is a no-op, so
// re-opening never produces duplicate concurrent intervals.
func (s *Store) RecordArticleOpen(articleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.articleViews {
		if v.ArticleID == articleID && v.ClosedAt == nil {
			return
		}
	}
	s.articleViews = append(s.articleViews, models.ArticleViewRecord{
		ArticleID: articleID,
		OpenedAt:  s.now(),
	})
}

// RecordArticleClose closes the open interval for the article, if any.
func (s *Store) RecordArticleClose(articleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articleViews {
		if s.articleViews[i].ArticleID == articleID && s.articleViews[i].ClosedAt == nil {
			closed := s.now()
			s.articleViews[i].ClosedAt = &closed
			return
		}
	}
}

// ArticleViewHistory returns all recorded intervals in open order.
func (s *Store) ArticleViewHistory() []models.ArticleViewRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ArticleViewRecord(nil), s.articleViews...)
}

// TotalReadingTime sums every interval, counting still-open intervals up to
// the moment of the call. Repeated calls while an article stays open
// therefore report increasing totals.
func (s *Store) TotalReadingTime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var total time.Duration
	for _, v := range s.articleViews {
		total += v.Duration(now)
	}
	return total
}

// ReadingTimeFor sums the intervals of one article.
func (s *Store) ReadingTimeFor(articleID string) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var total time.Duration
	for _, v := range s.articleViews {
		if v.ArticleID == articleID {
			total += v.Duration(now)
		}
	}
	return total
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thebeat-edu/beat-go-api/internal/dto"
)

func TestActivityOpenCloseAndSummary(t *testing.T) {
	svc := NewActivityService(newTestStore(t), testValidator(), testLogger())

	require.NoError(t, svc.OpenArticle(context.Background(), dto.ArticleOpenRequest{ArticleID: "676065:1"}))
	require.NoError(t, svc.CloseArticle(context.Background(), dto.ArticleOpenRequest{ArticleID: "676065:1"}))

	summary := svc.Summary(context.Background())
	require.Len(t, summary.Views, 1)
	require.NotNil(t, summary.Views[0].ClosedAt)
	require.Contains(t, summary.PerArticleSeconds, "676065:1")
}

func TestActivityOpenRequiresArticleID(t *testing.T) {
	svc := NewActivityService(newTestStore(t), testValidator(), testLogger())

	require.Error(t, svc.OpenArticle(context.Background(), dto.ArticleOpenRequest{}))
}

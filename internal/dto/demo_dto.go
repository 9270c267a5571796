package dto

import "github.com/thebeat-edu/beat-go-api/internal/models"

// DemoModeRequest switches between the scripted data universes.
type DemoModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=fresh accumulated"`
}

// ViewRoleRequest toggles the presented perspective.
type ViewRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=teacher student"`
}

// DemoStateResponse reports the demo controller state.
type DemoStateResponse struct {
	Mode     string `json:"mode"`
	ViewRole string `json:"viewRole"`
}

// ArticleOpenRequest marks the start or end of an article reading interval.
type ArticleOpenRequest struct {
	ArticleID string `json:"articleId" validate:"required"`
}

// ActivitySummaryResponse reports reading activity totals in seconds.
type ActivitySummaryResponse struct {
	TotalReadingSeconds int64                      `json:"totalReadingSeconds"`
	PerArticleSeconds   map[string]int64           `json:"perArticleSeconds"`
	Views               []models.ArticleViewRecord `json:"views"`
}

package dto

// EssayDraftRequest carries the working essay HTML.
type EssayDraftRequest struct {
	HTMLContent string `json:"htmlContent"`
}

// CitationRequest stores one citation keyed by the cited article.
type CitationRequest struct {
	ArticleID string `json:"articleId" validate:"required"`
	Citation  string `json:"citation" validate:"required,min=3"`
}

// EssaySubmitRequest submits the essay into a classroom.
type EssaySubmitRequest struct {
	ClassroomID string `json:"classroomId" validate:"required"`
	HTMLContent string `json:"htmlContent" validate:"required,min=1"`
}

// CitationArticle is the source metadata a citation is validated against.
type CitationArticle struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	PublishedAt string `json:"publishedAt" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Section     string `json:"section"`
}

// CitationValidateRequest checks a student citation against an article.
type CitationValidateRequest struct {
	Citation string          `json:"citation" validate:"required,min=3"`
	Style    string          `json:"style" validate:"required,oneof=mla apa chicago"`
	Article  CitationArticle `json:"article" validate:"required"`
}

// EssayExportResponse is the plain-text rendering of the essay draft.
type EssayExportResponse struct {
	Text      string `json:"text"`
	WordCount int    `json:"wordCount"`
}

// WorkspaceResponse is the combined writing workspace state.
type WorkspaceResponse struct {
	Essay     string            `json:"essay"`
	WordCount int               `json:"wordCount"`
	Citations map[string]string `json:"citations"`
}

package dto

// HighlightRequest describes a saved highlight. The id is optional; the
// server assigns one when the client does not.
type HighlightRequest struct {
	ID           string `json:"id" validate:"omitempty,min=1"`
	ArticleID    string `json:"articleId" validate:"required"`
	ArticleTitle string `json:"articleTitle" validate:"omitempty"`
	Text         string `json:"text" validate:"required,min=1"`
}

// NoteRequest describes a research note. General notes carry no article id.
type NoteRequest struct {
	ID        string `json:"id" validate:"omitempty,min=1"`
	ArticleID string `json:"articleId" validate:"omitempty"`
	Content   string `json:"content" validate:"required,min=1"`
}

// NoteUpdateRequest rewrites the content of an existing note.
type NoteUpdateRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// HighlightReplaceRequest swaps the entire highlight list of a scope.
type HighlightReplaceRequest struct {
	Highlights []HighlightRequest `json:"highlights" validate:"dive"`
}

// NoteReplaceRequest swaps the entire note list of a scope.
type NoteReplaceRequest struct {
	Notes []NoteRequest `json:"notes" validate:"dive"`
}

package models

// Highlight is a saved excerpt of article text.
type Highlight struct {
	ID           string `json:"id"`
	ArticleID    string `json:"articleId"`
	ArticleTitle string `json:"articleTitle,omitempty"`
	Text         string `json:"text"`
}

// Key returns the identity of the highlight within its collection.
func (h Highlight) Key() string { return h.ID }

// Note is a free-form research note, optionally attached to an article.
type Note struct {
	ID        string `json:"id"`
	ArticleID string `json:"articleId,omitempty"`
	Content   string `json:"content"`
}

// Key returns the identity of the note within its collection.
func (n Note) Key() string { return n.ID }

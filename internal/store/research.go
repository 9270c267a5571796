package store

import (
	"fmt"

	"github.com/thebeat-edu/beat-go-api/internal/models"
)

// Scope selects which research universe an operation targets. Student and
// teacher artifacts share one contract but independent id spaces.
type Scope string

// Research scopes.
const (
	ScopeStudent Scope = "student"
	ScopeTeacher Scope = "teacher"
)

// ParseScope validates a scope string from the transport layer.
func ParseScope(raw string) (Scope, error) {
	switch Scope(raw) {
	case ScopeStudent:
		return ScopeStudent, nil
	case ScopeTeacher:
		return ScopeTeacher, nil
	}
	return "", fmt.Errorf("unknown research scope %q", raw)
}

type keyed interface {
	Key() string
}

// collection is an insertion-ordered list with unique keys. One generic
// implementation backs highlights and notes in both scopes.
type collection[T keyed] struct {
	items []T
}

func (c *collection[T]) add(item T) {
	c.items = append(c.items, item)
}

// remove filters out the item with the given key. Removing an absent key is
// a no-op.
func (c *collection[T]) remove(key string) bool {
	for i, item := range c.items {
		if item.Key() == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// replace discards all prior contents. The incoming slice is copied so later
// caller mutations cannot alias store state.
func (c *collection[T]) replace(items []T) {
	c.items = append([]T(nil), items...)
}

func (c *collection[T]) update(key string, fn func(*T)) bool {
	for i := range c.items {
		if c.items[i].Key() == key {
			fn(&c.items[i])
			return true
		}
	}
	return false
}

// all returns a copy in insertion order.
func (c *collection[T]) all() []T {
	return append([]T(nil), c.items...)
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// researchSet is one scope's highlights and notes.
type researchSet struct {
	highlights collection[models.Highlight]
	notes      collection[models.Note]
}

func (s *Store) scoped(scope Scope) *researchSet {
	if scope == ScopeTeacher {
		return &s.teacher
	}
	return &s.student
}

// AddHighlight appends a highlight to the scope's collection. The caller
// supplies the id; the store does not deduplicate by content.
func (s *Store) AddHighlight(scope Scope, h models.Highlight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scoped(scope).highlights.add(h)
	s.persistLocked()
}

// RemoveHighlight deletes a highlight by id. Absent ids are a no-op.
func (s *Store) RemoveHighlight(scope Scope, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scoped(scope).highlights.remove(id) {
		s.persistLocked()
	}
}

// ReplaceHighlights discards the scope's highlights and installs the given
// set wholesale.
func (s *Store) ReplaceHighlights(scope Scope, highlights []models.Highlight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scoped(scope).highlights.replace(highlights)
	s.persistLocked()
}

// Highlights returns the scope's highlights in insertion order.
func (s *Store) Highlights(scope Scope) []models.Highlight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scoped(scope).highlights.all()
}

// HighlightsForArticle is a read-only projection by article id.
func (s *Store) HighlightsForArticle(scope Scope, articleID string) []models.Highlight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scoped(scope).highlights.filter(func(h models.Highlight) bool {
		return h.ArticleID == articleID
	})
}

// AddNote appends a note to the scope's collection.
func (s *Store) AddNote(scope Scope, n models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scoped(scope).notes.add(n)
	s.persistLocked()
}

// UpdateNote replaces the content of the note with the given id in place.
// Absent ids are a no-op.
func (s *Store) UpdateNote(scope Scope, id, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := s.scoped(scope).notes.update(id, func(n *models.Note) {
		n.Content = content
	})
	if updated {
		s.persistLocked()
	}
}

// RemoveNote deletes a note by id. Absent ids are a no-op.
func (s *Store) RemoveNote(scope Scope, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scoped(scope).notes.remove(id) {
		s.persistLocked()
	}
}

// ReplaceNotes discards the scope's notes and installs the given set.
func (s *Store) ReplaceNotes(scope Scope, notes []models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scoped(scope).notes.replace(notes)
	s.persistLocked()
}

// Notes returns the scope's notes in insertion order.
func (s *Store) Notes(scope Scope) []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scoped(scope).notes.all()
}

// NotesForArticle is a read-only projection by article id.
func (s *Store) NotesForArticle(scope Scope, articleID string) []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scoped(scope).notes.filter(func(n models.Note) bool {
		return n.ArticleID == articleID
	})
}

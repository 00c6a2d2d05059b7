// Package manager holds the client-side post list. It owns no I/O: the
// UI layer applies a mutation only after the matching network call has
// succeeded, so a failed call never touches the list.
package manager

import (
	"errors"

	"github.com/ButyrinIA/postboard/internal/models"
)

var (
	ErrNotFound    = errors.New("post not found")
	ErrDuplicateID = errors.New("duplicate post id")
)

// PostManager keeps posts in fetch order, with created posts appended
// and deleted posts removed. No two entries share an id.
type PostManager struct {
	posts []models.Post
}

func New() *PostManager {
	return &PostManager{}
}

// Posts returns a copy of the list in its current order.
func (m *PostManager) Posts() []models.Post {
	out := make([]models.Post, len(m.posts))
	copy(out, m.posts)
	return out
}

func (m *PostManager) Len() int {
	return len(m.posts)
}

// Get returns the post with the given id, if present.
func (m *PostManager) Get(id int) (models.Post, bool) {
	for _, p := range m.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// NextID is the synthetic id for the next created post: 1 + max(ids),
// or 1 for an empty list. It is independent of any id the server assigns.
func (m *PostManager) NextID() int {
	maxID := 0
	for _, p := range m.posts {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// Replace swaps the whole list for a fetch result.
func (m *PostManager) Replace(posts []models.Post) {
	m.posts = make([]models.Post, len(posts))
	copy(m.posts, posts)
}

// Append adds a created post to the end of the list.
func (m *PostManager) Append(post models.Post) error {
	if _, exists := m.Get(post.ID); exists {
		return ErrDuplicateID
	}
	m.posts = append(m.posts, post)
	return nil
}

// Update replaces the entry with post.ID in place, keeping its position.
func (m *PostManager) Update(post models.Post) error {
	for i, p := range m.posts {
		if p.ID == post.ID {
			m.posts[i] = post
			return nil
		}
	}
	return ErrNotFound
}

// Remove drops the entry with the given id, keeping the relative order
// of the rest.
func (m *PostManager) Remove(id int) error {
	for i, p := range m.posts {
		if p.ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

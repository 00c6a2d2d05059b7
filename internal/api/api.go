// Package api defines the client interface to the remote post collection.
package api

import (
	"context"
	"errors"

	"github.com/ButyrinIA/postboard/internal/models"
)

// Client errors.
var ErrNotFound = errors.New("post not found")

// Client is the interface to a post resource collection. Implementations
// must treat every failure uniformly: the caller only distinguishes
// "succeeded" from "failed".
type Client interface {
	// ListPosts returns all posts in the collection's order.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// CreatePost stores a new post and returns the echoed resource.
	// Callers keep their own id; the echoed id is informational.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// UpdatePost replaces the post addressed by post.ID and returns the
	// echoed resource.
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)

	// DeletePost removes the post addressed by id.
	DeletePost(ctx context.Context, id int) error

	Close() error
}

// Package memory implements api.Client in process memory. It backs the
// -backend=memory mode and serves as a test double for the TUI.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ButyrinIA/postboard/internal/api"
	"github.com/ButyrinIA/postboard/internal/models"
)

type MemoryClient struct {
	posts map[int]models.Post
	mu    sync.RWMutex
}

func New(seed ...models.Post) *MemoryClient {
	c := &MemoryClient{posts: make(map[int]models.Post)}
	for _, p := range seed {
		c.posts[p.ID] = p
	}
	return c
}

func (c *MemoryClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	posts := make([]models.Post, 0, len(c.posts))
	for _, p := range c.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (c *MemoryClient) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.posts[post.ID] = post
	return post, nil
}

func (c *MemoryClient) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.posts[post.ID]; !exists {
		return models.Post{}, api.ErrNotFound
	}
	c.posts[post.ID] = post
	return post, nil
}

func (c *MemoryClient) DeletePost(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.posts[id]; !exists {
		return api.ErrNotFound
	}
	delete(c.posts, id)
	return nil
}

func (c *MemoryClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.posts = make(map[int]models.Post)
	return nil
}

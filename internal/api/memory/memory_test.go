package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ButyrinIA/postboard/internal/api"
	"github.com/ButyrinIA/postboard/internal/models"
)

func TestMemoryClient(t *testing.T) {
	t.Run("CreatePost and ListPosts", func(t *testing.T) {
		client := New()
		ctx := context.Background()

		p1 := models.Post{ID: 2, UserID: 1, Title: "second", Body: "b"}
		p2 := models.Post{ID: 1, UserID: 1, Title: "first", Body: "a"}

		created, err := client.CreatePost(ctx, p1)
		assert.NoError(t, err)
		assert.Equal(t, p1, created, "create must echo the resource")

		_, err = client.CreatePost(ctx, p2)
		assert.NoError(t, err)

		posts, err := client.ListPosts(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []models.Post{p2, p1}, posts, "listing must be ordered by id")
	})

	t.Run("UpdatePost", func(t *testing.T) {
		client := New(models.Post{ID: 1, UserID: 1, Title: "old", Body: "b"})
		ctx := context.Background()

		updated, err := client.UpdatePost(ctx, models.Post{ID: 1, UserID: 1, Title: "new", Body: "b"})
		assert.NoError(t, err)
		assert.Equal(t, "new", updated.Title)

		posts, err := client.ListPosts(ctx)
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, "new", posts[0].Title)
	})

	t.Run("UpdatePost not found", func(t *testing.T) {
		client := New()

		_, err := client.UpdatePost(context.Background(), models.Post{ID: 9})
		assert.ErrorIs(t, err, api.ErrNotFound)
	})

	t.Run("DeletePost", func(t *testing.T) {
		client := New(
			models.Post{ID: 1, Title: "keep"},
			models.Post{ID: 2, Title: "drop"},
		)
		ctx := context.Background()

		assert.NoError(t, client.DeletePost(ctx, 2))

		posts, err := client.ListPosts(ctx)
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, 1, posts[0].ID)
	})

	t.Run("DeletePost not found", func(t *testing.T) {
		client := New()
		assert.ErrorIs(t, client.DeletePost(context.Background(), 3), api.ErrNotFound)
	})

	t.Run("Close clears the collection", func(t *testing.T) {
		client := New(models.Post{ID: 1})

		assert.NoError(t, client.Close())

		posts, err := client.ListPosts(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, posts)
	})
}

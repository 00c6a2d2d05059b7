package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ButyrinIA/postboard/internal/models"
)

func TestListPosts(t *testing.T) {
	posts := []models.Post{
		{UserID: 1, ID: 1, Title: "a", Body: "x"},
		{UserID: 1, ID: 2, Title: "b", Body: "y"},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		assert.NoError(t, json.NewEncoder(w).Encode(posts))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	got, err := client.ListPosts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestCreatePost(t *testing.T) {
	post := models.Post{UserID: 1, ID: 4, Title: "t", Body: "b"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "application/json; charset=UTF-8", r.Header.Get("Content-Type"))

		var received models.Post
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, post, received, "payload must carry the synthetic id")

		// The demo server assigns its own id; the client must pass the
		// echo through untouched.
		received.ID = 101
		w.WriteHeader(http.StatusCreated)
		assert.NoError(t, json.NewEncoder(w).Encode(received))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	created, err := client.CreatePost(context.Background(), post)
	assert.NoError(t, err)
	assert.Equal(t, 101, created.ID)
}

func TestUpdatePost(t *testing.T) {
	post := models.Post{UserID: 1, ID: 2, Title: "new", Body: "b"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/posts/2", r.URL.Path)

		var received models.Post
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, post, received)
		assert.NoError(t, json.NewEncoder(w).Encode(received))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	updated, err := client.UpdatePost(context.Background(), post)
	assert.NoError(t, err)
	assert.Equal(t, post, updated)
}

func TestDeletePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/posts/5", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	assert.NoError(t, client.DeletePost(context.Background(), 5))
}

func TestBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)

	_, err := client.ListPosts(context.Background())
	assert.Error(t, err, "any non-2xx status is a plain failure")

	_, err = client.CreatePost(context.Background(), models.Post{ID: 1})
	assert.Error(t, err)

	_, err = client.UpdatePost(context.Background(), models.Post{ID: 1})
	assert.Error(t, err)

	assert.Error(t, client.DeletePost(context.Background(), 1))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := New(srv.URL, time.Second, nil)
	_, err := client.ListPosts(context.Background())
	assert.Error(t, err)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts", r.URL.Path)
		assert.NoError(t, json.NewEncoder(w).Encode([]models.Post{}))
	}))
	defer srv.Close()

	client := New(srv.URL+"/", time.Second, nil)
	_, err := client.ListPosts(context.Background())
	assert.NoError(t, err)
}

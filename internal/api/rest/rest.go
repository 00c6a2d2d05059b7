// Package rest implements api.Client against a JSONPlaceholder-style
// REST collection: GET/POST /posts, PUT/DELETE /posts/{id}.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ButyrinIA/postboard/internal/models"
	"github.com/google/uuid"
)

type RestClient struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *RestClient {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &RestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *RestClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *RestClient) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	var created models.Post
	if err := c.do(ctx, http.MethodPost, "/posts", &post, &created); err != nil {
		return models.Post{}, err
	}
	return created, nil
}

func (c *RestClient) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	var updated models.Post
	path := fmt.Sprintf("/posts/%d", post.ID)
	if err := c.do(ctx, http.MethodPut, path, &post, &updated); err != nil {
		return models.Post{}, err
	}
	return updated, nil
}

func (c *RestClient) DeletePost(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, nil)
}

func (c *RestClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do issues one request and decodes the response into out when out is
// non-nil. All failure modes collapse into a single error: the UI layer
// does not distinguish transport errors from bad statuses.
func (c *RestClient) do(ctx context.Context, method, path string, in, out any) error {
	reqID := uuid.New().String()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %v", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("request failed", "id", reqID, "method", method, "path", path, "err", err)
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	c.log.Info("request done",
		"id", reqID, "method", method, "path", path,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %v", err)
		}
	}
	return nil
}

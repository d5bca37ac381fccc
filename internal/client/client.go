// Package client provides a typed API client for the posts endpoints and a
// state controller mirroring the behavior of the web UI: a cached post list
// patched from authoritative server responses, with advisory pre-submission
// validation and a single surfaced error message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"postboard/internal/models"
)

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// CreatePostData is the request body of a create operation.
type CreatePostData struct {
	Title     string  `json:"title"`
	Content   *string `json:"content,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// UpdatePostData is the request body of an update operation. Nil fields are
// omitted and left unchanged server-side.
type UpdatePostData struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// Client calls the posts REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:3001").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetAllPosts fetches every post.
func (c *Client) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost creates a post and returns the persisted record.
func (c *Client) CreatePost(ctx context.Context, data CreatePostData) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodPost, "/posts", data, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost applies a partial update and returns the updated record.
func (c *Client) UpdatePost(ctx context.Context, id uint, data UpdatePostData) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", id), data, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post and returns the record as it existed before.
func (c *Client) DeletePost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody models.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Code = errBody.Code
			apiErr.Message = errBody.Error
			apiErr.Fields = errBody.Fields
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

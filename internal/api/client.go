// Package api talks to the remote todo service over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/idilsaglam/todoview/internal/model"
)

// DefaultBaseURL points at the public demo collection.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// ErrNotFound is returned when the service answers 2xx with its "no such
// item" shape: a body that decodes to an object without an id.
var ErrNotFound = errors.New("todo not found")

// Service is the read-only surface the UI consumes. The concrete client
// below implements it; tests substitute fakes.
type Service interface {
	Todos(ctx context.Context) ([]model.Todo, error)
	Todo(ctx context.Context, id int) (model.Todo, error)
}

// Client implements Service against a real HTTP endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the service rooted at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Todos fetches the whole collection.
func (c *Client) Todos(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	if err := c.getJSON(ctx, "/todos", &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Todo fetches a single item by id.
func (c *Client) Todo(ctx context.Context, id int) (model.Todo, error) {
	var todo model.Todo
	if err := c.getJSON(ctx, fmt.Sprintf("/todos/%d", id), &todo); err != nil {
		return model.Todo{}, err
	}
	if todo.ID == 0 {
		return model.Todo{}, ErrNotFound
	}
	return todo, nil
}

// getJSON performs one GET and decodes the body into out. Failures are
// normalized: transport errors are wrapped, a non-2xx status becomes
// "HTTP error! Status: <code>", and an unparseable body becomes a parse
// error. Callers route all three to the same error presentation.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("HTTP error! Status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	if err := sonic.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

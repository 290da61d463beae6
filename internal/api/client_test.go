package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todoview/internal/model"
)

func newTestServer(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestTodosDecodesCollection(t *testing.T) {
	c := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/todos", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"A","completed":false},{"id":2,"title":"B","completed":true}]`))
	}))

	todos, err := c.Todos(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, model.Todo{ID: 1, Title: "A", Completed: false}, todos[0])
	assert.Equal(t, model.Todo{ID: 2, Title: "B", Completed: true}, todos[1])
}

func TestTodosHTTPErrorMessage(t *testing.T) {
	c := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Todos(context.Background())
	require.Error(t, err)
	assert.Equal(t, "HTTP error! Status: 500", err.Error())
}

func TestTodosParseFailure(t *testing.T) {
	c := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))

	_, err := c.Todos(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse /todos")
}

func TestTodosNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := New(srv.URL)
	srv.Close()

	_, err := c.Todos(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch /todos")
}

func TestTodoFetchesByID(t *testing.T) {
	c := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/todos/5", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":5,"title":"X","completed":true}`))
	}))

	todo, err := c.Todo(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, model.Todo{ID: 5, Title: "X", Completed: true}, todo)
}

func TestTodoAbsentShapeIsNotFound(t *testing.T) {
	c := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The demo service answers 200 with an empty object for unknown ids.
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := c.Todo(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTodoNonOKStatus(t *testing.T) {
	c := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.Todo(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, "HTTP error! Status: 404", err.Error())
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/todos", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL + "/")
	todos, err := c.Todos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

package reqres

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "userdir/internal/domain/user"
	"userdir/internal/httpclient"
	"userdir/internal/logging"
)

func newClient(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "reqres-free-v1", r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := New(Config{
		BaseURL:   srv.URL,
		UsersPath: "/api/users",
		APIKey:    "reqres-free-v1",
	}, logging.NewNop())
	require.NoError(t, err)
	return c
}

func TestListUsers_OK(t *testing.T) {
	c := newClient(t, http.StatusOK, `{
		"page": 1,
		"data": [
			{"id": 1, "first_name": "Ann", "last_name": "Lee", "email": "ann@x.io", "avatar": "https://img/1.jpg"},
			{"id": 2, "first_name": "Bob", "last_name": "Ray", "email": "bob@x.io", "avatar": "https://img/2.jpg"}
		]
	}`)

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dom.User{
		{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@x.io", Avatar: "https://img/1.jpg"},
		{ID: 2, FirstName: "Bob", LastName: "Ray", Email: "bob@x.io", Avatar: "https://img/2.jpg"},
	}, users)
}

func TestListUsers_EmptyArray(t *testing.T) {
	c := newClient(t, http.StatusOK, `{"data": []}`)

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestListUsers_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "data missing", body: `{"page": 1}`},
		{name: "data null", body: `{"data": null}`},
		{name: "data is object", body: `{"data": {"id": 1}}`},
		{name: "data is string", body: `{"data": "users"}`},
		{name: "element has wrong types", body: `{"data": [{"id": "one"}]}`},
		{name: "top level array", body: `[{"id": 1}]`},
		{name: "not json", body: `<html>oops</html>`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, http.StatusOK, tt.body)

			users, err := c.ListUsers(context.Background())
			assert.ErrorIs(t, err, dom.ErrMalformedResponse)
			assert.Nil(t, users)
		})
	}
}

func TestListUsers_HTTPStatus(t *testing.T) {
	c := newClient(t, http.StatusServiceUnavailable, `{"error":"down"}`)

	_, err := c.ListUsers(context.Background())
	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr), "got %v", err)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.False(t, errors.Is(err, dom.ErrMalformedResponse))
}

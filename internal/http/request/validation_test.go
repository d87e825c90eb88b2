package request

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Limit int    `json:"limit" validate:"max=10"`
}

func bind(t *testing.T, body string) (*httptest.ResponseRecorder, sample, bool) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var dst sample
	ok := BindAndValidate(w, r, &dst)
	return w, dst, ok
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Error
}

func TestBindAndValidate_OK(t *testing.T) {
	w, dst, ok := bind(t, `{"name":"ann","limit":3}`)
	require.True(t, ok)
	assert.Equal(t, sample{Name: "ann", Limit: 3}, dst)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestBindAndValidate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "empty body", body: ``, wantMsg: "Invalid JSON payload."},
		{name: "broken json", body: `{"name":`, wantMsg: "Invalid JSON payload."},
		{name: "unknown field", body: `{"name":"a","extra":1}`, wantMsg: "Invalid JSON payload."},
		{name: "missing required", body: `{"limit":1}`, wantMsg: "Invalid field(s): name: required"},
		{name: "over max", body: `{"name":"a","limit":11}`, wantMsg: "Invalid field(s): limit: max=10"},
		{name: "too large", body: `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`, wantMsg: "Invalid JSON payload."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, ok := bind(t, tt.body)
			require.False(t, ok)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, w))
		})
	}
}

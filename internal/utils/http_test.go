package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		body   string
	}{
		{name: "object", data: map[string]string{"key": "value"}, status: http.StatusOK, body: `{"key":"value"}`},
		{name: "custom status", data: map[string]string{"error": "not found"}, status: http.StatusNotFound, body: `{"error":"not found"}`},
		{name: "nil", data: nil, status: http.StatusOK, body: "null"},
		{name: "empty slice", data: []string{}, status: http.StatusOK, body: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)
			assert.Equal(t, len(tt.body), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("ok", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
		var dst payload

		require.NoError(t, DecodeJSON(httptest.NewRecorder(), r, &dst, 1024))
		assert.Equal(t, "x", dst.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		var dst payload

		assert.ErrorIs(t, DecodeJSON(httptest.NewRecorder(), r, &dst, 1024), ErrEmptyBody)
	})

	t.Run("whitespace body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("   "))
		var dst payload

		assert.ErrorIs(t, DecodeJSON(httptest.NewRecorder(), r, &dst, 1024), ErrEmptyBody)
	})

	t.Run("malformed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		var dst payload

		err := DecodeJSON(httptest.NewRecorder(), r, &dst, 1024)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmptyBody)
	})

	t.Run("too large", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("a", 64)+`"}`))
		var dst payload

		var maxErr *http.MaxBytesError
		assert.ErrorAs(t, DecodeJSON(httptest.NewRecorder(), r, &dst, 16), &maxErr)
	})
}

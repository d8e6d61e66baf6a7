// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cipher-keeper/internal/config"
	"github.com/MKhiriev/cipher-keeper/internal/logger"
	"github.com/MKhiriev/cipher-keeper/internal/service"
	"github.com/MKhiriev/cipher-keeper/internal/store"
	"github.com/MKhiriev/cipher-keeper/models"
)

func ptr[T any](v T) *T { return &v }

func newTestAdapter(t *testing.T, serverURL, token string) service.VaultService {
	t.Helper()
	a, err := NewHTTPVaultAdapter(config.Client{
		RemoteAddress:  serverURL,
		AccessToken:    token,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewHTTPVaultAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPVaultAdapter(config.Client{RemoteAddress: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8087", want: "http://localhost:8087"},
		{raw: "https://vault.example.com/", want: "https://vault.example.com"},
		{raw: " http://127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImport(t *testing.T) {
	data := []models.CipherData{
		{Name: "7.bmFtZQ==", Type: models.CipherTypeLogin, Login: &models.LoginData{Username: "7.dXNlcg=="}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ciphers/import", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var got []models.CipherData
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, data, got)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ids":["id-1"]}`))
	}))
	defer srv.Close()

	ids, err := newTestAdapter(t, srv.URL, "tok").Import(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-1"}, ids)
}

func TestGetView(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/ciphers/abc", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"abc","name":"mail","type":1,"login":{"username":"me","password":"pw","uri":"","totp":""}}`))
	}))
	defer srv.Close()

	view, err := newTestAdapter(t, srv.URL, "").GetView(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", *view.ID)
	assert.Equal(t, "mail", view.Name)
	require.NotNil(t, view.Login)
	assert.Equal(t, "pw", view.Login.Password)
}

func TestListViews_SendsFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ciphers", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "f1", q.Get("folderId"))
		assert.Equal(t, "o1", q.Get("organizationId"))
		assert.Equal(t, "4", q.Get("type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"a","name":"first","type":4},{"id":"b","name":"second","type":4}]`))
	}))
	defer srv.Close()

	views, err := newTestAdapter(t, srv.URL, "").ListViews(context.Background(), models.CipherFilter{
		FolderID:       ptr("f1"),
		OrganizationID: ptr("o1"),
		Type:           ptr(models.CipherTypeIdentity),
	})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "first", views[0].Name)
	assert.Equal(t, "second", views[1].Name)
}

func TestListViews_EmptyFilterAndResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	views, err := newTestAdapter(t, srv.URL, "").ListViews(context.Background(), models.CipherFilter{})
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/ciphers/abc", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL, "").Delete(context.Background(), "abc"))
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, service.ErrInvalidDataProvided},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, store.ErrCipherNotFound},
		{http.StatusConflict, store.ErrCipherAlreadyExists},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "details", tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL, "").GetView(context.Background(), "abc")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "details")
		})
	}
}

func TestErrorMapping_UnlistedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, "").Delete(context.Background(), "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusServiceUnavailable))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url, "").ListViews(context.Background(), models.CipherFilter{})
	assert.Error(t, err)
}

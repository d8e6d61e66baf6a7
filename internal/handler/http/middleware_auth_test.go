package http

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/cipher-keeper/internal/utils"
	"github.com/MKhiriev/cipher-keeper/models"
)

func signedToken(t *testing.T, key, issuer string, d time.Duration) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(issuer, "reader", d, key)
	require.NoError(t, err)
	return token
}

func expiredToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "reader",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	signed, err := token.SignedString([]byte(testSignKey))
	require.NoError(t, err)
	return signed
}

func TestAuth_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		header   func(t *testing.T) string
		wantBody string
	}{
		{name: "no header", header: func(*testing.T) string { return "" }, wantBody: ErrEmptyAuthorizationHeader.Error()},
		{name: "no bearer scheme", header: func(*testing.T) string { return "Token abc" }, wantBody: ErrInvalidAuthorizationHeader.Error()},
		{name: "missing token", header: func(*testing.T) string { return "Bearer" }, wantBody: ErrInvalidAuthorizationHeader.Error()},
		{name: "expired", header: func(t *testing.T) string { return "Bearer " + expiredToken(t) }, wantBody: ErrTokenExpired.Error()},
		{name: "wrong key", header: func(t *testing.T) string {
			return "Bearer " + signedToken(t, "other-key", testIssuer, time.Hour)
		}, wantBody: http.StatusText(http.StatusUnauthorized)},
		{name: "wrong issuer", header: func(t *testing.T) string {
			return "Bearer " + signedToken(t, testSignKey, "someone-else", time.Hour)
		}, wantBody: http.StatusText(http.StatusUnauthorized)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, authConfig())

			headers := map[string]string{}
			if h := tt.header(t); h != "" {
				headers["Authorization"] = h
			}

			rr := doRequest(router, http.MethodGet, "/api/ciphers", nil, headers)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
		})
	}
}

func TestAuth_AcceptsValidToken(t *testing.T) {
	router, vault := newTestRouter(t, authConfig())
	vault.EXPECT().ListViews(gomock.Any(), models.CipherFilter{}).Return([]*models.CipherView{}, nil)

	rr := doRequest(router, http.MethodGet, "/api/ciphers", nil, map[string]string{
		"Authorization": "Bearer " + signedToken(t, testSignKey, testIssuer, time.Hour),
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestAuth_DisabledWithoutSignKey(t *testing.T) {
	router, vault := newTestRouter(t, openConfig())
	vault.EXPECT().Delete(gomock.Any(), "abc").Return(nil)

	rr := doRequest(router, http.MethodDelete, "/api/ciphers/abc", nil, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

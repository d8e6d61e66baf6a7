package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/cipher-keeper/models"
)

func TestInit_RegistersRoutes(t *testing.T) {
	router, _ := newTestRouter(t, openConfig())

	registered := map[string][]string{}
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			registered[route.Pattern] = append(registered[route.Pattern], method)
		}
	}

	assert.ElementsMatch(t, []string{http.MethodGet}, registered["/api/ciphers"])
	assert.ElementsMatch(t, []string{http.MethodPost}, registered["/api/ciphers/import"])
	assert.ElementsMatch(t, []string{http.MethodGet, http.MethodDelete}, registered["/api/ciphers/{id}"])
}

func TestInit_UnsupportedMethodIsNotFound(t *testing.T) {
	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/ciphers"},
		{http.MethodDelete, "/api/ciphers"},
		{http.MethodPut, "/api/ciphers/abc"},
		{http.MethodGet, "/api/ciphers/import/extra"},
		{http.MethodGet, "/api/unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			router, _ := newTestRouter(t, openConfig())

			rr := doRequest(router, tt.method, tt.target, nil, nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router, vault := newTestRouter(t, openConfig())
	vault.EXPECT().ListViews(gomock.Any(), gomock.Any()).Return([]*models.CipherView{}, nil)

	rr := doRequest(router, http.MethodGet, "/api/ciphers", nil, map[string]string{traceIDHeader: "trace-42"})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	router, vault := newTestRouter(t, openConfig())
	vault.EXPECT().GetView(gomock.Any(), "boom").DoAndReturn(func(any, string) (*models.CipherView, error) {
		panic("boom")
	})

	rr := doRequest(router, http.MethodGet, "/api/ciphers/boom", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/cipher-keeper/internal/config"
	"github.com/MKhiriev/cipher-keeper/internal/logger"
	"github.com/MKhiriev/cipher-keeper/internal/service"
	"github.com/MKhiriev/cipher-keeper/internal/utils"
	"github.com/MKhiriev/cipher-keeper/models"
)

type httpVaultAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

type importResponse struct {
	IDs []string `json:"ids"`
}

// NewHTTPVaultAdapter returns a [service.VaultService] that calls the read
// API at cfg.RemoteAddress. The address may omit the scheme, in which case
// http is assumed. A non-empty cfg.AccessToken is sent as a bearer token.
func NewHTTPVaultAdapter(cfg config.Client, logger *logger.Logger) (service.VaultService, error) {
	baseURL, err := normalizeBaseURL(cfg.RemoteAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout).WithBearerToken(strings.TrimSpace(cfg.AccessToken))

	logger.Debug().Str("base_url", baseURL).Msg("remote vault adapter created")
	return &httpVaultAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Import implements [service.VaultService] via POST /api/ciphers/import.
func (h *httpVaultAdapter) Import(ctx context.Context, data []models.CipherData) ([]string, error) {
	var result importResponse

	resp, err := h.request(ctx).
		SetBody(data).
		SetResult(&result).
		Post("/api/ciphers/import")
	if err != nil {
		return nil, fmt.Errorf("import request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.IDs, nil
}

// GetView implements [service.VaultService] via GET /api/ciphers/{id}.
func (h *httpVaultAdapter) GetView(ctx context.Context, id string) (*models.CipherView, error) {
	var view models.CipherView

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&view).
		Get("/api/ciphers/{id}")
	if err != nil {
		return nil, fmt.Errorf("get cipher request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &view, nil
}

// ListViews implements [service.VaultService] via GET /api/ciphers.
func (h *httpVaultAdapter) ListViews(ctx context.Context, filter models.CipherFilter) ([]*models.CipherView, error) {
	views := make([]*models.CipherView, 0)

	resp, err := h.request(ctx).
		SetQueryParamsFromValues(filterToQuery(filter)).
		SetResult(&views).
		Get("/api/ciphers")
	if err != nil {
		return nil, fmt.Errorf("list ciphers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return views, nil
}

// Delete implements [service.VaultService] via DELETE /api/ciphers/{id}.
func (h *httpVaultAdapter) Delete(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete("/api/ciphers/{id}")
	if err != nil {
		return fmt.Errorf("delete cipher request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpVaultAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func filterToQuery(filter models.CipherFilter) url.Values {
	query := url.Values{}
	if filter.FolderID != nil {
		query.Set("folderId", *filter.FolderID)
	}
	if filter.OrganizationID != nil {
		query.Set("organizationId", *filter.OrganizationID)
	}
	if filter.Type != nil {
		query.Set("type", strconv.Itoa(int(*filter.Type)))
	}
	return query
}

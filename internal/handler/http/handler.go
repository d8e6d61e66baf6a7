package http

import (
	"github.com/MKhiriev/cipher-keeper/internal/config"
	"github.com/MKhiriev/cipher-keeper/internal/logger"
	"github.com/MKhiriev/cipher-keeper/internal/service"
)

// maxImportBodySize bounds the body of an import request.
const maxImportBodySize = 32 << 20

type Handler struct {
	vault service.VaultService
	cfg   config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", cfg.AuthEnabled()).Msg("http handler created")
	return &Handler{
		vault:  services.VaultService,
		cfg:    cfg,
		logger: logger,
	}
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Group(func(r chi.Router) {
		if h.cfg.AuthEnabled() {
			r.Use(h.auth)
		}

		r.Get("/api/ciphers", h.listCiphers)
		r.Post("/api/ciphers/import", h.importCiphers)
		r.Get("/api/ciphers/{id}", h.getCipher)
		r.Delete("/api/ciphers/{id}", h.deleteCipher)
	})

	router.MethodNotAllowed(unknownMethod)

	return router
}

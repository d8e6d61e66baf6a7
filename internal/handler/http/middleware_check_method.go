// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/cipher-keeper/internal/logger"
)

// unknownMethod answers a request to a known cipher path with an
// unregistered method, e.g. PUT /api/ciphers/{id}. The read API reports
// it as 404 so the route table looks the same to every caller.
func unknownMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not served by the read API")

	http.NotFound(w, r)
}

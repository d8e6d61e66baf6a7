package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/cipher-keeper/internal/app"
	"github.com/MKhiriev/cipher-keeper/internal/logger"
	"github.com/MKhiriev/cipher-keeper/internal/utils"
	"github.com/MKhiriev/cipher-keeper/models"
)

// importResponse is the body of a successful import.
type importResponse struct {
	IDs []string `json:"ids"`
}

func (h *Handler) listCiphers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := filterFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCiphers").Msg("invalid filter")
		http.Error(w, app.MsgInvalidFilter, http.StatusBadRequest)
		return
	}

	views, err := h.vault.ListViews(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCiphers").Msg("error listing ciphers")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, views, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listCiphers").Msg("error writing response")
	}
}

func (h *Handler) getCipher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	view, err := h.vault.GetView(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCipher").Str("id", id).Msg("error getting cipher")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, view, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getCipher").Msg("error writing response")
	}
}

func (h *Handler) deleteCipher(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.vault.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCipher").Str("id", id).Msg("error deleting cipher")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) importCiphers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var data []models.CipherData
	if err := utils.DecodeJSON(w, r, &data, maxImportBodySize); err != nil {
		log.Err(err).Str("func", "*Handler.importCiphers").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	ids, err := h.vault.Import(r.Context(), data)
	if err != nil {
		log.Err(err).Str("func", "*Handler.importCiphers").Msg("error importing ciphers")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, importResponse{IDs: ids}, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.importCiphers").Msg("error writing response")
	}
}

// filterFromQuery reads ?folderId=, ?organizationId= and ?type=. Absent
// parameters leave the filter field nil.
func filterFromQuery(r *http.Request) (models.CipherFilter, error) {
	query := r.URL.Query()
	var filter models.CipherFilter

	if query.Has("folderId") {
		v := query.Get("folderId")
		filter.FolderID = &v
	}
	if query.Has("organizationId") {
		v := query.Get("organizationId")
		filter.OrganizationID = &v
	}
	if query.Has("type") {
		t, ok := models.ParseCipherType(query.Get("type"))
		if !ok {
			return models.CipherFilter{}, ErrInvalidTypeParam
		}
		filter.Type = &t
	}

	return filter, nil
}

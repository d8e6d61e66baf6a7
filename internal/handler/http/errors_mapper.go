package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/cipher-keeper/internal/app"
	"github.com/MKhiriev/cipher-keeper/internal/crypto"
	"github.com/MKhiriev/cipher-keeper/internal/service"
	"github.com/MKhiriev/cipher-keeper/internal/store"
)

// errorResponseMap is checked in order; the first match wins.
var errorResponseMap = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrValidationNoCiphersProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrValidationNoCipherID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrUnknownCipherType, http.StatusUnprocessableEntity, app.MsgUnknownCipherType},

	{store.ErrCipherNotFound, http.StatusNotFound, app.MsgCipherNotFound},
	{store.ErrCipherAlreadyExists, http.StatusConflict, app.MsgCipherAlreadyExists},

	{crypto.ErrKeyNotFound, http.StatusForbidden, app.MsgAccessDenied},
	{crypto.ErrUnsupportedEncType, http.StatusUnprocessableEntity, app.MsgUnsupportedEncryption},
}

// responseFromError returns the status code and the client-facing message
// for err.
func responseFromError(err error) (int, string) {
	for _, e := range errorResponseMap {
		if errors.Is(err, e.err) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status, message := responseFromError(err)
	http.Error(w, message, status)
}

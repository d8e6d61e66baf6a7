package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/cipher-keeper/internal/service"
	"github.com/MKhiriev/cipher-keeper/internal/store"
)

// statusErrors turns read API status codes back into the sentinels the
// local vault returns, so callers can use errors.Is in either mode.
var statusErrors = map[int]error{
	http.StatusBadRequest:          service.ErrInvalidDataProvided,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            store.ErrCipherNotFound,
	http.StatusConflict:            store.ErrCipherAlreadyExists,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	status := resp.StatusCode()
	body := strings.TrimSpace(string(resp.Body()))

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, body)
}

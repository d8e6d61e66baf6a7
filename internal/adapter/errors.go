package adapter

import "errors"

var (
	ErrInvalidAddress      = errors.New("invalid remote address")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrUnprocessable       = errors.New("unprocessable record")
	ErrInternalServerError = errors.New("internal server error")
)

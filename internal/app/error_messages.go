// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the read API
// handlers and middleware.
//
// All Msg* constants are written into HTTP response bodies in place of the
// underlying error text, so internal details (key scopes, SQL errors,
// decryption failures) never reach a client.
package app

const (
	// MsgInvalidDataProvided is returned when the request input fails
	// validation (e.g. an empty import or a missing record id).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when an import body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidFilter is returned when a list query parameter is malformed.
	MsgInvalidFilter = "invalid filter"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgCipherNotFound is returned when the requested record does not exist.
	MsgCipherNotFound = "cipher not found"

	// MsgCipherAlreadyExists is returned when an import carries an id that
	// is already stored.
	MsgCipherAlreadyExists = "cipher already exists"

	// MsgAccessDenied is returned when the vault holds no key for the
	// record's organization.
	MsgAccessDenied = "access denied"

	// MsgUnknownCipherType is returned in strict mode for records of a type
	// this build cannot decode.
	MsgUnknownCipherType = "unknown cipher type"

	// MsgUnsupportedEncryption is returned when a record was encrypted with
	// an algorithm this build cannot decrypt.
	MsgUnsupportedEncryption = "unsupported encryption type"
)

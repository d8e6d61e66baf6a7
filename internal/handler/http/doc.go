// Package http implements the read API of the vault.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, compression and the optional bearer token check
// are handled in this package before requests reach the vault service.
package http

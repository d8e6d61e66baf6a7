// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the CLI talk to a running read API instead of
// opening the database itself.
//
// [NewHTTPVaultAdapter] returns a [service.VaultService] backed by HTTP
// calls, so commands work the same in local and remote mode. Status codes
// are mapped back to the sentinels the local implementation returns
// (404 to [store.ErrCipherNotFound], 409 to [store.ErrCipherAlreadyExists])
// or to the transport errors in errors.go, so callers can use [errors.Is]
// regardless of mode.
package adapter

import "github.com/MKhiriev/cipher-keeper/internal/service"

var _ service.VaultService = (*httpVaultAdapter)(nil)

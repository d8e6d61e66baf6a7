// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault records before they reach storage.
//
// A Validator accepts a single value or a batch and may be scoped to a
// subset of fields (see the Field* constants). The service layer runs the
// CipherData validator on every import and id lookup, so malformed cipher
// strings and empty batches are rejected up front instead of failing later
// inside decryption.
package validators

import "context"

// Validator validates input, optionally restricted to the named fields.
// With no fields given every rule applies.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when there is no HTTP
// handler to serve or no address to listen on.
var errNoServersAreCreated = errors.New("read API server is not configured")

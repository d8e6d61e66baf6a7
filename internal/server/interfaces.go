package server

import "context"

// Server defines the lifecycle of the read API server.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is done or a
	// stop signal arrives.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown() error
}

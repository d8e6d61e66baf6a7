// Package server runs the read API: startup, signal handling and graceful
// shutdown of the HTTP listener.
package server

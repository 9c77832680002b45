package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until ctx is done, then shuts down
	// gracefully. It returns the listener error if serving fails.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones
	// until ctx expires.
	Shutdown(ctx context.Context) error
}

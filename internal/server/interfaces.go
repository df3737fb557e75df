package server

import "context"

// Server defines the lifecycle contract of the development API server.
type Server interface {
	// RunServer serves requests until ctx is done or a termination signal
	// arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error
}

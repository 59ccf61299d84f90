// Package delivery defines the contract every transport entrypoint
// implements so the application can run them uniformly.
package delivery

import "context"

// Delivery is a long-running transport surface, e.g. an HTTP server.
type Delivery interface {
	// Serve blocks until the delivery stops or the context is cancelled.
	Serve(ctx context.Context) error
}

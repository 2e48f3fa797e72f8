// Package delivery defines the contract every transport (HTTP, worker)
// implements so the process entry point can start them uniformly.
package delivery

import "context"

// Delivery is a long-running request-serving component.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}

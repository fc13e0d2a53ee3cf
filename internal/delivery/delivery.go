package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, etc.)
// started by the application container.
type Delivery interface {
	// Serve blocks until the delivery stops or ctx is cancelled.
	Serve(ctx context.Context) error
}

package delivery

import "context"

// Delivery is a long-running inbound surface, e.g. an HTTP server.
// Shutdown is handled through the fx lifecycle, not through this interface.
type Delivery interface {
	// Serve blocks until the surface fails or the process stops.
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a serving surface started by the application container. Each
// implementation registers itself into the "deliveries" Fx group.
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every transport (HTTP today, more
// later) fulfills so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a running transport endpoint.
type Delivery interface {
	// Serve blocks serving requests until the context is cancelled or the
	// transport fails.
	Serve(ctx context.Context) error
}

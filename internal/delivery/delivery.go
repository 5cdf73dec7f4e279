// Package delivery defines the servers started by the application.
package delivery

import "context"

// Delivery is a server that blocks serving requests until it is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Package delivery contains the outer surfaces that expose the use cases.
package delivery

import "context"

// Delivery is a surface the application serves until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Package delivery holds the process entry points served by the composition root.
package delivery

import (
	"context"
)

// Delivery is a long-running entry point such as the local HTTP API
type Delivery interface {
	Serve(ctx context.Context) error
}

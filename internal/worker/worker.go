package worker

import (
	"context"
)

// Worker is one long-running queue consumer.
type Worker interface {
	// Start runs the consume loop until Stop or context cancellation.
	Start(ctx context.Context) error

	// Stop signals the loop to drain and exit.
	Stop() error

	// Name identifies the worker in logs.
	Name() string
}

// Package workers provides abstractions for managing and running
// background workers of the client runtime.
// It defines the Worker interface and a Workers aggregate that runs
// several workers together and stops them as a unit.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. A worker that stops
// because ctx was cancelled returns nil.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Package abort provides a reusable abort controller over context
// cancellation: each abort cancels the current signal with its reason and
// installs a fresh live one, and disposing the controller aborts with the
// fixed ErrDisposed reason.
package abort

import (
	"context"
	"errors"
	"sync"
)

// ErrDisposed is the abort reason used when a controller is released
// through its Dispose.
var ErrDisposed = errors.New("abort controller disposed")

// Controller hands out abortable signals. Unlike a bare
// context.CancelCauseFunc it is reusable: Abort cancels the current signal
// and replaces it, so the same controller can abort any number of times,
// each time yielding a new live signal.
//
// Controller implements the Disposable contract, so it can be registered
// with a disposable Group directly.
type Controller struct {
	parent context.Context

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// NewController creates a controller whose signals derive from parent. A nil
// parent defaults to context.Background().
func NewController(parent context.Context) *Controller {
	if parent == nil {
		parent = context.Background()
	}

	c := &Controller{parent: parent}
	c.ctx, c.cancel = context.WithCancelCause(parent)

	return c
}

// Signal returns the current live signal. The signal is done once Abort or
// Dispose runs, with the abort reason available through context.Cause.
func (c *Controller) Signal() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctx
}

// Abort cancels the current signal with reason and installs a fresh live
// one. A nil reason is reported as context.Canceled, per
// context.CancelCauseFunc.
func (c *Controller) Abort(reason error) {
	c.mu.Lock()
	cancel := c.cancel
	c.ctx, c.cancel = context.WithCancelCause(c.parent)
	c.mu.Unlock()

	cancel(reason)
}

// Dispose aborts with the fixed ErrDisposed reason. It never fails; the
// error return satisfies the Disposable contract.
func (c *Controller) Dispose() error {
	c.Abort(ErrDisposed)
	return nil
}

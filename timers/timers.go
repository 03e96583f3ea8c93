// Package timers wraps one-shot and repeating timers as group-tracked
// disposables. One-shot timers release their own group entry right before
// firing, so cancelling a timer that already fired is always a safe no-op
// rather than a race.
//
// Callbacks run on runtime-managed timer goroutines, as with time.AfterFunc.
package timers

import (
	"time"

	"github.com/bodil/disposable"
	"go.uber.org/atomic"
)

// After schedules fn to run once after d and registers the pending timer
// with the group. Releasing the returned handle (or disposing the group)
// before the timer fires cancels it; fn then never runs.
//
// When the timer does fire, it first claims and releases its own group
// entry and only then invokes fn, so exactly one of cancellation and fn
// ever wins.
func After(g *disposable.Group, d time.Duration, fn func()) *disposable.Handle {
	claimed := atomic.NewBool(false)
	ready := make(chan struct{})

	var handle *disposable.Handle
	timer := time.AfterFunc(d, func() {
		<-ready
		if claimed.Swap(true) {
			// Cancelled first.
			return
		}
		handle.Dispose()
		fn()
	})

	handle = g.AddFunc(func() error {
		if !claimed.Swap(true) {
			timer.Stop()
		}
		return nil
	})
	close(ready)

	return handle
}

// Every schedules fn to run every d until the returned handle (or the whole
// group) is disposed.
func Every(g *disposable.Group, d time.Duration, fn func()) *disposable.Handle {
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return g.AddFunc(func() error {
		ticker.Stop()
		close(done)
		return nil
	})
}

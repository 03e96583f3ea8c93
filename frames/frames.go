// Package frames provides a ticker-driven frame scheduler, the analog of a
// host animation-callback facility: callbacks are queued and each runs once
// on the next frame with the frame timestamp. Frame requests registered
// through a disposable Group release their own entry right before firing,
// so cancelling a request that already ran is always a safe no-op.
package frames

import (
	"sync"
	"time"

	"github.com/bodil/disposable"
	"go.uber.org/atomic"
)

// Scheduler pumps frames at a fixed interval and drains the queued
// callbacks on each one. Callbacks run on the scheduler's goroutine.
type Scheduler struct {
	mu      sync.Mutex
	queue   map[uint64]func(time.Time)
	nextKey uint64

	ticker *time.Ticker
	done   chan struct{}
}

// NewScheduler starts a scheduler pumping one frame per interval.
func NewScheduler(interval time.Duration) *Scheduler {
	s := &Scheduler{
		queue:  make(map[uint64]func(time.Time)),
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go s.pump()

	return s
}

// Stop halts the frame pump. Queued callbacks that have not fired are
// dropped.
func (s *Scheduler) Stop() {
	s.ticker.Stop()
	close(s.done)
}

// Len returns the number of callbacks waiting for the next frame.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

func (s *Scheduler) pump() {
	for {
		select {
		case <-s.done:
			return
		case now := <-s.ticker.C:
			s.mu.Lock()
			frame := s.queue
			s.queue = make(map[uint64]func(time.Time))
			s.mu.Unlock()

			for _, fn := range frame {
				fn(now)
			}
		}
	}
}

// request queues fn for the next frame and returns its cancellation key.
func (s *Scheduler) request(fn func(time.Time)) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextKey++
	s.queue[s.nextKey] = fn

	return s.nextKey
}

// cancel drops a queued callback if it has not fired.
func (s *Scheduler) cancel(key uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.queue, key)
}

// Request queues fn for the scheduler's next frame and registers the pending
// request with the group. Releasing the returned handle (or disposing the
// group) before the frame cancels the request; once the frame arrives, the
// request first claims and releases its own group entry and only then
// invokes fn.
func Request(g *disposable.Group, s *Scheduler, fn func(time.Time)) *disposable.Handle {
	claimed := atomic.NewBool(false)
	ready := make(chan struct{})

	var handle *disposable.Handle
	key := s.request(func(now time.Time) {
		<-ready
		if claimed.Swap(true) {
			// Cancelled first.
			return
		}
		handle.Dispose()
		fn(now)
	})

	handle = g.AddFunc(func() error {
		if !claimed.Swap(true) {
			s.cancel(key)
		}
		return nil
	})
	close(ready)

	return handle
}

// Package events provides a typed event emitter whose subscriptions plug
// directly into a disposable Group: listeners detach through the same
// release-once contract as every other tracked resource.
package events

import (
	"sort"
	"sync"

	"github.com/bodil/disposable"
	"go.uber.org/atomic"
)

// Emitter dispatches events of type T to its current listeners.
//
// Listener bookkeeping is safe for concurrent use. Listeners run
// synchronously on the emitting goroutine, with no lock held, so a listener
// may subscribe or unsubscribe on the same emitter.
type Emitter[T any] struct {
	mu        sync.Mutex
	listeners map[uint64]func(T)
	nextKey   uint64
}

// NewEmitter creates an emitter with no listeners.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{listeners: make(map[uint64]func(T))}
}

// Config holds subscription options.
type Config struct {
	// Once detaches the listener right before its first invocation, so the
	// listener observes at most one event.
	Once bool
}

// Option configures a subscription.
type Option func(*Config)

// Once makes the subscription self-detaching: the listener is removed right
// before its first invocation, so unsubscribing after it fired is always a
// safe no-op.
func Once() Option {
	return func(c *Config) {
		c.Once = true
	}
}

// On attaches a listener and returns its subscription. The subscription
// detaches exactly that listener; detaching twice is a no-op.
func (e *Emitter[T]) On(fn func(T), opts ...Option) *Subscription {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	e.mu.Lock()
	e.nextKey++
	key := e.nextKey
	e.mu.Unlock()

	sub := &Subscription{detach: func() {
		e.mu.Lock()
		delete(e.listeners, key)
		e.mu.Unlock()
	}}

	handler := fn
	if cfg.Once {
		handler = func(event T) {
			sub.Unsubscribe()
			fn(event)
		}
	}

	e.mu.Lock()
	e.listeners[key] = handler
	e.mu.Unlock()

	return sub
}

// Emit dispatches event to every listener attached at the time of the call,
// in attach order.
func (e *Emitter[T]) Emit(event T) {
	e.mu.Lock()
	keys := make([]uint64, 0, len(e.listeners))
	for key := range e.listeners {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	snapshot := make([]func(T), 0, len(keys))
	for _, key := range keys {
		snapshot = append(snapshot, e.listeners[key])
	}
	e.mu.Unlock()

	for _, fn := range snapshot {
		fn(event)
	}
}

// Len returns the number of attached listeners.
func (e *Emitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}

// Subscription detaches a single listener from its emitter. It satisfies the
// adapter's unsubscribable shape, so it can be registered with a Group
// as-is.
type Subscription struct {
	done   atomic.Bool
	detach func()
}

// Unsubscribe detaches the listener. Only the first call has an effect.
func (s *Subscription) Unsubscribe() {
	if s.done.Swap(true) {
		return
	}
	s.detach()
}

// Listen attaches fn to the emitter and registers the subscription with the
// group, so disposing the group (or the returned handle) detaches the
// listener.
func Listen[T any](g *disposable.Group, e *Emitter[T], fn func(T), opts ...Option) (*disposable.Handle, error) {
	return g.Add(e.On(fn, opts...))
}

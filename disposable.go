package disposable

import "go.uber.org/atomic"

// Disposable is the release-once contract all cleanup sources are normalized
// to. Dispose releases the underlying resource and returns the cleanup
// action's error, if any.
//
// Implementations produced by this package are safe to call any number of
// times; only the first call has an observable effect. A bare implementation
// of the interface carries no such guarantee by itself: wrap it with Once,
// or register it with a Group, which guards every entry independently.
//
// Example:
//
//	type Subscription struct {
//	    topic *Topic
//	}
//
//	func (s *Subscription) Dispose() error {
//	    return s.topic.Detach(s)
//	}
type Disposable interface {
	// Dispose releases the resource.
	Dispose() error
}

// Func adapts a plain cleanup function to the Disposable interface.
type Func func() error

// Dispose implements Disposable.
func (f Func) Dispose() error {
	return f()
}

// Noop is the disposable that does nothing.
var Noop Disposable = Func(func() error { return nil })

// Once wraps d so its Dispose runs at most once. The first call invokes the
// underlying cleanup and returns its error; every later call is a no-op
// returning nil. Safe for concurrent use.
func Once(d Disposable) Disposable {
	if d == nil {
		return Noop
	}
	return &once{wrapped: d}
}

type once struct {
	done    atomic.Bool
	wrapped Disposable
}

func (o *once) Dispose() error {
	if o.done.Swap(true) {
		return nil
	}
	return o.wrapped.Dispose()
}

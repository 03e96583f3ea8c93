package disposable

import "io"

// Unsubscriber is the rx-style release shape: a single Unsubscribe method.
// Subscriptions from event emitters and stream libraries commonly expose
// this instead of Dispose.
type Unsubscriber interface {
	Unsubscribe()
}

// FromFunc adapts a cleanup function returning an error. A nil function
// yields Noop.
func FromFunc(fn func() error) Disposable {
	if fn == nil {
		return Noop
	}
	return Func(fn)
}

// FromAction adapts a cleanup function with no error return. A nil function
// yields Noop.
func FromAction(fn func()) Disposable {
	if fn == nil {
		return Noop
	}
	return Func(func() error {
		fn()
		return nil
	})
}

// FromCloser adapts an io.Closer. A nil closer yields Noop.
func FromCloser(c io.Closer) Disposable {
	if c == nil {
		return Noop
	}
	return Func(c.Close)
}

// FromUnsubscriber adapts an rx-style subscription. A nil value yields Noop.
func FromUnsubscriber(u Unsubscriber) Disposable {
	if u == nil {
		return Noop
	}
	return Func(func() error {
		u.Unsubscribe()
		return nil
	})
}

// Adapt normalizes a cleanup source of a shape unknown until runtime into a
// Disposable. It accepts the same closed set of shapes the typed From*
// constructors cover:
//
//   - func() error and func()
//   - Disposable
//   - io.Closer
//   - Unsubscriber
//
// Any other value fails with AdaptationError. This is a programmer error at
// the call site, not a recoverable runtime condition.
//
// The produced Disposable is not idempotence-wrapped; callers that need the
// release-once guarantee wrap the result with Once. Group does this on its
// own for every registered entry.
func Adapt(source any) (Disposable, error) {
	switch v := source.(type) {
	case func() error:
		return Func(v), nil
	case func():
		return FromAction(v), nil
	case Disposable:
		return v, nil
	case io.Closer:
		return FromCloser(v), nil
	case Unsubscriber:
		return FromUnsubscriber(v), nil
	default:
		return nil, AdaptationError{Value: source}
	}
}

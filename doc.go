// Package disposable provides deterministic, idempotent cleanup of external
// resources through a uniform release-once contract, plus a composite Group
// that aggregates many disposables and releases them together exactly once.
//
// # Overview
//
// The library normalizes heterogeneous cleanup sources into a single contract
// and tracks them for bulk release:
//   - A single Disposable contract: one release operation, safe to call any
//     number of times
//   - Adaptation of plain functions, io.Closer values, and rx-style
//     unsubscribables into that contract
//   - A Group container with at-most-once release per entry, early individual
//     release, and safe reentrant bulk disposal
//   - An Owner composition helper giving an arbitrary type a use/teardown
//     lifecycle
//   - Platform adapters for event subscriptions, timers, frame callbacks, and
//     abort signals in the events, timers, frames, and abort subpackages
//
// # Basic Usage
//
// Create a group, register cleanup sources, and dispose the group when done:
//
//	group := disposable.NewGroup()
//	defer group.DisposeAll()
//
//	group.AddCloser(conn)
//	group.AddFunc(func() error {
//	    return cache.Flush()
//	})
//
//	handle, err := group.Add(subscription)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Release one entry early; the later DisposeAll will not run it again.
//	handle.Dispose()
//
// # Idempotence
//
// Every registered entry is guarded so its underlying cleanup action runs at
// most once, whether it is released early through its Handle, released by
// DisposeAll, or both. DisposeAll itself is idempotent and the group is
// reusable: entries registered after a bulk disposal are released by the next
// one.
//
// # Error Handling
//
// Cleanup failures during a bulk pass never prevent the remaining entries
// from being released. DisposeAll collects every failure and returns them as
// a single aggregated error; individual failures can be recovered with
// errors.As and the DisposalError type.
//
// # Ownership
//
// Owner attaches a Group to a containing type for the common case where a
// value wants a single terminal teardown:
//
//	type Server struct {
//	    owner *disposable.Owner
//	}
//
//	func NewServer() *Server {
//	    return &Server{owner: disposable.NewOwner()}
//	}
//
//	func (s *Server) Close() error {
//	    return s.owner.Teardown()
//	}
//
// Registering on an owner after teardown is a programming error and panics,
// unlike the reuse-friendly Group.
package disposable

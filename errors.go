package disposable

import (
	"errors"
	"fmt"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================

var (
	// ErrOwnerTornDown is the panic value when a resource is registered on
	// an Owner whose Teardown already ran.
	ErrOwnerTornDown = errors.New("owner has been torn down")
)

var (
	_ error = AdaptationError{}
	_ error = InvariantViolationError{}
	_ error = DisposalError{}
)

// ========================================
// Typed Errors for Rich Context
// ========================================

// AdaptationError indicates a value matched none of the accepted cleanup
// source shapes. It signals a bug at the registering call site and is never
// retried or recovered by this package.
type AdaptationError struct {
	Value any
}

func (e AdaptationError) Error() string {
	return fmt.Sprintf("don't know how to convert %T to a disposable", e.Value)
}

// InvariantViolationError is the panic value when entries visited by a bulk
// disposal pass remain registered after the pass. It signals a bug in an
// entry's release logic breaking the at-most-once, self-removing contract;
// group state is undefined at that point, so it is fatal rather than
// returned.
type InvariantViolationError struct {
	GroupID   string
	Remaining int
}

func (e InvariantViolationError) Error() string {
	return fmt.Sprintf("group %s: %d entries survived bulk disposal", e.GroupID, e.Remaining)
}

// DisposalError wraps a single entry's cleanup failure inside the aggregated
// error returned by Group.DisposeAll. Key identifies the failing entry
// within its group.
type DisposalError struct {
	Key uint64
	Err error
}

func (e DisposalError) Error() string {
	return fmt.Sprintf("dispose entry[%d]: %v", e.Key, e.Err)
}

func (e DisposalError) Unwrap() error {
	return e.Err
}

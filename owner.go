package disposable

import "sync"

// Owner composes a Group into a containing type for the common case where a
// value wants delegated registration and a single terminal teardown. The
// group is created at construction and owned exclusively by the owner.
//
// Unlike the reuse-friendly Group, an owner's teardown is terminal for that
// owner instance: registering after Teardown is an ordering bug in the
// caller and panics with ErrOwnerTornDown.
type Owner struct {
	mu    sync.Mutex
	group *Group
}

// NewOwner creates an owner with a fresh group. Options are forwarded to
// NewGroup.
func NewOwner(opts ...Option) *Owner {
	return &Owner{group: NewGroup(opts...)}
}

// Use registers a cleanup source on the owner's group, with the same source
// shapes and nil passthrough as Group.Add.
//
// Panics with ErrOwnerTornDown if Teardown already ran.
func (o *Owner) Use(source any) (*Handle, error) {
	o.mu.Lock()
	g := o.group
	o.mu.Unlock()

	if g == nil {
		panic(ErrOwnerTornDown)
	}

	return g.Add(source)
}

// Teardown disposes the owner's group and detaches it. The first call
// returns the group's aggregated disposal error; later calls are no-ops
// returning nil.
func (o *Owner) Teardown() error {
	o.mu.Lock()
	g := o.group
	o.group = nil
	o.mu.Unlock()

	if g == nil {
		return nil
	}

	return g.DisposeAll()
}

// TornDown reports whether Teardown has run.
func (o *Owner) TornDown() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.group == nil
}

package disposable

// Handle identifies a single registered entry within a Group and is itself a
// Disposable: releasing it removes that exact entry from the group and runs
// its cleanup once.
//
// Releasing a handle whose entry is already gone, whether through an earlier
// call on the same handle or a bulk DisposeAll, is a safe no-op. A nil
// handle is likewise a safe no-op, so the result of registering an optional
// source can be disposed unconditionally.
type Handle struct {
	group *Group
	key   uint64
}

// Dispose releases this entry early. The first effective call removes the
// entry from its group and invokes the underlying cleanup, returning its
// error; every other call returns nil.
func (h *Handle) Dispose() error {
	if h == nil || h.group == nil {
		return nil
	}

	release, ok := h.group.claim(h.key)
	if !ok {
		return nil
	}

	return release.Dispose()
}

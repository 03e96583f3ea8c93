package disposable

import (
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Group is an aggregate container of live disposables. Entries are
// registered with Add (or a typed variant), released individually through
// the returned Handle, and released in bulk with DisposeAll.
//
// A Group has no terminal state: DisposeAll empties it, after which new
// registrations are accepted and a later DisposeAll releases whatever is
// newly present. Each entry's underlying cleanup runs at most once no matter
// how its release is reached.
//
// Registration bookkeeping is safe for concurrent use. Cleanup actions run
// with no lock held, so an action may itself register or release entries on
// the same group (including during a bulk pass) without deadlocking.
//
// Example:
//
//	group := disposable.NewGroup()
//	group.AddCloser(listener)
//	group.AddFunc(pool.Drain)
//	defer group.DisposeAll()
type Group struct {
	groupID string
	logger  *zap.Logger

	mu      sync.Mutex
	entries map[uint64]*entry
	nextKey uint64
}

// entry pairs a stable key with its once-guarded release. Keys are handed
// out monotonically and never reused, so a Handle can always identify its
// exact entry.
type entry struct {
	key     uint64
	release Disposable
}

// NewGroup creates an empty group.
func NewGroup(opts ...Option) *Group {
	g := &Group{
		groupID: uuid.NewString(),
		logger:  zap.NewNop(),
		entries: make(map[uint64]*entry),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// ID returns the unique ID of this group.
func (g *Group) ID() string {
	return g.groupID
}

// Len returns the number of currently live entries.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}

// Add registers a cleanup source of a shape unknown until runtime, adapting
// it per Adapt. A nil source is passed through: Add returns (nil, nil) and
// registers nothing, so optional cleanup sources need no nil check at the
// call site (a nil *Handle is itself a safe no-op disposable).
//
// The returned Handle releases this exact entry early, removing it from the
// group. An unrecognized source shape returns an AdaptationError.
func (g *Group) Add(source any) (*Handle, error) {
	if source == nil {
		return nil, nil
	}

	d, err := Adapt(source)
	if err != nil {
		return nil, err
	}

	return g.insert(d), nil
}

// AddFunc registers a cleanup function. A nil function registers nothing
// and returns a nil (no-op) handle.
func (g *Group) AddFunc(fn func() error) *Handle {
	if fn == nil {
		return nil
	}
	return g.insert(Func(fn))
}

// AddDisposable registers a value already exposing the Disposable contract.
// A nil value registers nothing and returns a nil (no-op) handle.
func (g *Group) AddDisposable(d Disposable) *Handle {
	if d == nil {
		return nil
	}
	return g.insert(d)
}

// AddCloser registers an io.Closer. A nil closer registers nothing and
// returns a nil (no-op) handle.
func (g *Group) AddCloser(c io.Closer) *Handle {
	if c == nil {
		return nil
	}
	return g.insert(Func(c.Close))
}

func (g *Group) insert(d Disposable) *Handle {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextKey++
	e := &entry{key: g.nextKey, release: Once(d)}
	g.entries[e.key] = e

	return &Handle{group: g, key: e.key}
}

// claim removes the entry for key if it is still live and returns its
// release. Membership is the single source of truth: whichever caller
// deletes the entry owns running its release, so a bulk pass and an
// individual Handle release can never both invoke the same cleanup.
func (g *Group) claim(key uint64) (Disposable, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[key]
	if !ok {
		return nil, false
	}
	delete(g.entries, key)

	return e.release, true
}

// DisposeAll releases every entry currently in the group, in reverse
// registration order, and empties it. Failures do not stop the pass: every
// remaining entry is still released, each failure is logged, and all of them
// are returned as a single aggregated error whose elements are DisposalError
// values.
//
// DisposeAll is idempotent (an empty group is a no-op) and the group is
// reusable afterwards. It is also reentrancy-safe: a cleanup action may
// register new entries (they survive to the next DisposeAll) or release a
// sibling's handle (the pass skips entries already gone).
//
// Panics with InvariantViolationError if an entry visited by the pass is
// still registered when the pass completes.
func (g *Group) DisposeAll() error {
	g.mu.Lock()
	if len(g.entries) == 0 {
		g.mu.Unlock()
		return nil
	}
	snapshot := make([]uint64, 0, len(g.entries))
	for key := range g.entries {
		snapshot = append(snapshot, key)
	}
	g.mu.Unlock()

	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i] > snapshot[j] })

	var errs error
	for _, key := range snapshot {
		release, ok := g.claim(key)
		if !ok {
			// Already released individually, or by a reentrant pass.
			continue
		}
		if err := release.Dispose(); err != nil {
			g.logger.Error("cleanup failed",
				zap.String("group", g.groupID),
				zap.Uint64("entry", key),
				zap.Error(err))
			errs = multierr.Append(errs, DisposalError{Key: key, Err: err})
		}
	}

	g.mu.Lock()
	remaining := 0
	for _, key := range snapshot {
		if _, ok := g.entries[key]; ok {
			remaining++
		}
	}
	g.mu.Unlock()

	if remaining > 0 {
		panic(InvariantViolationError{GroupID: g.groupID, Remaining: remaining})
	}

	return errs
}

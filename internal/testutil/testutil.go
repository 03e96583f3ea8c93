// Package testutil provides shared fixtures for disposal tests: cleanup
// recorders counting invocations, and the various cleanup source shapes the
// adapter accepts.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

// Recorder counts how many times its cleanup ran, optionally failing with a
// fixed error.
type Recorder struct {
	calls atomic.Int32
	err   error
}

// NewRecorder creates a recorder whose cleanup succeeds.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewFailingRecorder creates a recorder whose cleanup returns err.
func NewFailingRecorder(err error) *Recorder {
	return &Recorder{err: err}
}

// Cleanup is the recorder's cleanup function.
func (r *Recorder) Cleanup() error {
	r.calls.Inc()
	return r.err
}

// Action is the recorder's cleanup as a no-error function.
func (r *Recorder) Action() {
	r.calls.Inc()
}

// Calls returns how many times the cleanup ran.
func (r *Recorder) Calls() int {
	return int(r.calls.Load())
}

// AssertCalls fails the test unless the recorder's cleanup ran exactly want
// times.
func AssertCalls(t *testing.T, r *Recorder, want int) {
	t.Helper()
	require.Equal(t, want, r.Calls(), "cleanup invocation count")
}

// Closer is an io.Closer cleanup source backed by a recorder.
type Closer struct {
	Rec *Recorder
}

func (c *Closer) Close() error {
	return c.Rec.Cleanup()
}

// Subscription is an rx-style cleanup source backed by a recorder.
type Subscription struct {
	Rec *Recorder
}

func (s *Subscription) Unsubscribe() {
	s.Rec.Action()
}

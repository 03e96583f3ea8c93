package abort_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bodil/disposable"
	"github.com/bodil/disposable/abort"
	"github.com/stretchr/testify/require"
)

func TestController(t *testing.T) {
	t.Run("abort cancels the current signal with its reason", func(t *testing.T) {
		c := abort.NewController(context.Background())
		signal := c.Signal()
		require.NoError(t, signal.Err())

		reason := errors.New("request superseded")
		c.Abort(reason)

		require.Error(t, signal.Err())
		require.ErrorIs(t, context.Cause(signal), reason)
	})

	t.Run("each abort yields a fresh live signal", func(t *testing.T) {
		c := abort.NewController(nil)

		first := c.Signal()
		c.Abort(errors.New("first"))

		second := c.Signal()
		require.NotSame(t, first, second)
		require.Error(t, first.Err())
		require.NoError(t, second.Err())

		c.Abort(errors.New("second"))
		require.Error(t, second.Err())
		require.NoError(t, c.Signal().Err())
	})

	t.Run("dispose aborts with the disposed reason", func(t *testing.T) {
		c := abort.NewController(nil)
		signal := c.Signal()

		require.NoError(t, c.Dispose())
		require.ErrorIs(t, context.Cause(signal), abort.ErrDisposed)
	})

	t.Run("signals derive from the parent context", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		c := abort.NewController(parent)

		cancel()
		require.Error(t, c.Signal().Err())
	})

	t.Run("registers with a group as a disposable", func(t *testing.T) {
		group := disposable.NewGroup()
		c := abort.NewController(nil)
		signal := c.Signal()

		handle, err := group.Add(c)
		require.NoError(t, err)
		require.NotNil(t, handle)

		require.NoError(t, group.DisposeAll())
		require.ErrorIs(t, context.Cause(signal), abort.ErrDisposed)
	})
}

package disposable_test

import (
	"errors"
	"testing"

	"github.com/bodil/disposable"
	"github.com/bodil/disposable/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestAdapt(t *testing.T) {
	t.Run("func with error", func(t *testing.T) {
		rec := testutil.NewRecorder()

		d, err := disposable.Adapt(rec.Cleanup)
		require.NoError(t, err)
		require.NoError(t, d.Dispose())
		testutil.AssertCalls(t, rec, 1)
	})

	t.Run("func without error", func(t *testing.T) {
		rec := testutil.NewRecorder()

		d, err := disposable.Adapt(rec.Action)
		require.NoError(t, err)
		require.NoError(t, d.Dispose())
		testutil.AssertCalls(t, rec, 1)
	})

	t.Run("disposable passes through", func(t *testing.T) {
		rec := testutil.NewRecorder()
		src := disposable.Func(rec.Cleanup)

		d, err := disposable.Adapt(src)
		require.NoError(t, err)
		require.NoError(t, d.Dispose())
		testutil.AssertCalls(t, rec, 1)
	})

	t.Run("io.Closer", func(t *testing.T) {
		rec := testutil.NewRecorder()

		d, err := disposable.Adapt(&testutil.Closer{Rec: rec})
		require.NoError(t, err)
		require.NoError(t, d.Dispose())
		testutil.AssertCalls(t, rec, 1)
	})

	t.Run("unsubscriber", func(t *testing.T) {
		rec := testutil.NewRecorder()

		d, err := disposable.Adapt(&testutil.Subscription{Rec: rec})
		require.NoError(t, err)
		require.NoError(t, d.Dispose())
		testutil.AssertCalls(t, rec, 1)
	})

	t.Run("unrecognized shape fails", func(t *testing.T) {
		for _, source := range []any{42, "cleanup", struct{}{}, func(int) {}} {
			d, err := disposable.Adapt(source)
			require.Nil(t, d)

			var adaptErr disposable.AdaptationError
			require.ErrorAs(t, err, &adaptErr)
			require.NotNil(t, adaptErr.Value)
		}

		d, err := disposable.Adapt(42)
		require.Nil(t, d)

		var adaptErr disposable.AdaptationError
		require.ErrorAs(t, err, &adaptErr)
		require.Equal(t, 42, adaptErr.Value)
	})

	t.Run("result is not idempotence-wrapped", func(t *testing.T) {
		rec := testutil.NewRecorder()

		d, err := disposable.Adapt(rec.Cleanup)
		require.NoError(t, err)
		require.NoError(t, d.Dispose())
		require.NoError(t, d.Dispose())
		testutil.AssertCalls(t, rec, 2)
	})
}

func TestFromConstructors(t *testing.T) {
	t.Run("FromFunc", func(t *testing.T) {
		wantErr := errors.New("boom")
		rec := testutil.NewFailingRecorder(wantErr)

		require.ErrorIs(t, disposable.FromFunc(rec.Cleanup).Dispose(), wantErr)
		testutil.AssertCalls(t, rec, 1)
	})

	t.Run("FromAction", func(t *testing.T) {
		rec := testutil.NewRecorder()

		require.NoError(t, disposable.FromAction(rec.Action).Dispose())
		testutil.AssertCalls(t, rec, 1)
	})

	t.Run("FromCloser", func(t *testing.T) {
		rec := testutil.NewRecorder()

		require.NoError(t, disposable.FromCloser(&testutil.Closer{Rec: rec}).Dispose())
		testutil.AssertCalls(t, rec, 1)
	})

	t.Run("FromUnsubscriber", func(t *testing.T) {
		rec := testutil.NewRecorder()

		require.NoError(t, disposable.FromUnsubscriber(&testutil.Subscription{Rec: rec}).Dispose())
		testutil.AssertCalls(t, rec, 1)
	})

	t.Run("nil sources yield Noop", func(t *testing.T) {
		require.NoError(t, disposable.FromFunc(nil).Dispose())
		require.NoError(t, disposable.FromAction(nil).Dispose())
		require.NoError(t, disposable.FromCloser(nil).Dispose())
		require.NoError(t, disposable.FromUnsubscriber(nil).Dispose())
	})
}

/*
Package storetest provides a suite of tests any tree.Store
implementation is expected to pass.
*/
package storetest

import (
	"context"
	"testing"

	"github.com/pbanos/arbor/tree"
	"github.com/stretchr/testify/require"
)

// Run takes a testing.T and a tree.Store, runs the suite against
// the store and closes it afterwards.
func Run(t *testing.T, s tree.Store) {
	ctx := context.Background()
	t.Cleanup(func() {
		require.NoError(t, s.Close(ctx))
	})

	t.Run("GetMissing", func(t *testing.T) {
		data, err := s.Get(ctx, "missing")
		require.NoError(t, err)
		require.Nil(t, data)
	})

	t.Run("PutGet", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "a", []byte{0x00, 0x01, 0xff}))
		data, err := s.Get(ctx, "a")
		require.NoError(t, err)
		require.Equal(t, []byte{0x00, 0x01, 0xff}, data)
	})

	t.Run("PutReplaces", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "b", []byte("first")))
		require.NoError(t, s.Put(ctx, "b", []byte("second")))
		data, err := s.Get(ctx, "b")
		require.NoError(t, err)
		require.Equal(t, []byte("second"), data)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "c", []byte("gone")))
		require.NoError(t, s.Delete(ctx, "c"))
		data, err := s.Get(ctx, "c")
		require.NoError(t, err)
		require.Nil(t, data)
		require.NoError(t, s.Delete(ctx, "c"))
	})

	t.Run("NamesAreIndependent", func(t *testing.T) {
		require.NoError(t, s.Put(ctx, "d1", []byte("one")))
		require.NoError(t, s.Put(ctx, "d2", []byte("two")))
		d1, err := s.Get(ctx, "d1")
		require.NoError(t, err)
		d2, err := s.Get(ctx, "d2")
		require.NoError(t, err)
		require.Equal(t, []byte("one"), d1)
		require.Equal(t, []byte("two"), d2)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		require.Error(t, s.Put(cctx, "e", []byte("never")))
		data, err := s.Get(ctx, "e")
		require.NoError(t, err)
		require.Nil(t, data)
	})
}

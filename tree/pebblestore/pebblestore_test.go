package pebblestore_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/pbanos/arbor/tree/pebblestore"
	"github.com/pbanos/arbor/tree/storetest"
	"github.com/stretchr/testify/require"
)

func TestPebbleStore(t *testing.T) {
	s, err := pebblestore.Open(t.TempDir(), nil)
	require.NoError(t, err)
	storetest.Run(t, s)
}

func TestInMemory(t *testing.T) {
	s, err := pebblestore.Open("", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	storetest.Run(t, s)
}

func TestReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := pebblestore.Open(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "kept", []byte("data")))
	require.NoError(t, s.Close(ctx))

	s, err = pebblestore.Open(dir, nil)
	require.NoError(t, err)
	defer s.Close(ctx)
	data, err := s.Get(ctx, "kept")
	require.NoError(t, err)
	require.Equal(t, []byte("data"), data)
}

package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Open(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "a", []byte("alpha")))

	w, err := store.Create(ctx, "b")
	require.NoError(t, err)
	_, err = w.Write([]byte("beta"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	blob, err := store.Open(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, int64(5), blob.Size())

	r, err := blob.ReadRange(ctx, 0, blob.Size())
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "alpha", string(data))
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Open(ctx, "a")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_OpenIsIsolatedFromPut(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a", []byte("old")))
	blob, err := store.Open(ctx, "a")
	require.NoError(t, err)
	defer blob.Close()

	require.NoError(t, store.Put(ctx, "a", []byte("new")))

	buf := make([]byte, 3)
	_, err = blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	require.Equal(t, "old", string(buf))
}

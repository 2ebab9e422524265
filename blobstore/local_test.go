package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	blobName := "glove.6B.50d.txt"
	data := []byte("fawn 0.1 0.2\nabandon 0.3 0.4\n")

	w, err := store.Create(ctx, blobName)
	require.NoError(t, err)

	n, err := w.Write(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.NoError(t, w.Close())

	blob, err := store.Open(ctx, blobName)
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 4)
	n, err = blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "fawn", string(buf))

	r, err := blob.ReadRange(ctx, 0, blob.Size())
	require.NoError(t, err)
	all, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.Equal(t, data, all)

	require.NoError(t, store.Put(ctx, "nested/extra.bin", []byte("x")))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{blobName, "nested/extra.bin"}, names)

	names, err = store.List(ctx, "nested/")
	require.NoError(t, err)
	require.Equal(t, []string{"nested/extra.bin"}, names)

	require.NoError(t, store.Delete(ctx, blobName))
	require.NoError(t, store.Delete(ctx, blobName)) // idempotent

	_, err = store.Open(ctx, blobName)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_CreateIsAtomic(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	w, err := store.Create(ctx, "partial.bin")
	require.NoError(t, err)
	_, err = w.Write([]byte("half-written"))
	require.NoError(t, err)

	// Not visible before Close.
	_, err = store.Open(ctx, "partial.bin")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, w.Close())
	_, err = os.Stat(filepath.Join(dir, "partial.bin"))
	require.NoError(t, err)
}

func TestLocalStore_ReadRangeBounds(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "b", []byte("0123456789")))

	blob, err := store.Open(ctx, "b")
	require.NoError(t, err)
	defer blob.Close()

	// Request past the end is truncated, not an error.
	r, err := blob.ReadRange(ctx, 8, 5)
	require.NoError(t, err)
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "89", string(content))
}

package blobstore

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingStore wraps a BlobStore and counts remote Opens.
type countingStore struct {
	BlobStore
	opens atomic.Int64
}

func (c *countingStore) Open(ctx context.Context, name string) (Blob, error) {
	c.opens.Add(1)
	return c.BlobStore.Open(ctx, name)
}

func readAll(t *testing.T, ctx context.Context, b Blob) []byte {
	t.Helper()
	r, err := b.ReadRange(ctx, 0, b.Size())
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return data
}

func TestCachingStore_MirrorsOnce(t *testing.T) {
	ctx := context.Background()
	remote := &countingStore{BlobStore: NewMemoryStore()}
	require.NoError(t, remote.BlobStore.Put(ctx, "glove.txt", []byte("fawn 0.1 0.2\n")))

	store, err := NewCachingStore(remote, t.TempDir())
	require.NoError(t, err)

	b1, err := store.Open(ctx, "glove.txt")
	require.NoError(t, err)
	require.Equal(t, "fawn 0.1 0.2\n", string(readAll(t, ctx, b1)))
	require.NoError(t, b1.Close())

	// Second open is served from the mirror.
	b2, err := store.Open(ctx, "glove.txt")
	require.NoError(t, err)
	require.Equal(t, "fawn 0.1 0.2\n", string(readAll(t, ctx, b2)))
	require.NoError(t, b2.Close())

	require.Equal(t, int64(1), remote.opens.Load())
}

func TestCachingStore_ConcurrentOpensCollapse(t *testing.T) {
	ctx := context.Background()
	remote := &countingStore{BlobStore: NewMemoryStore()}
	require.NoError(t, remote.BlobStore.Put(ctx, "big.txt", []byte("payload")))

	store, err := NewCachingStore(remote, t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := store.Open(ctx, "big.txt")
			if err == nil {
				b.Close()
			}
		}()
	}
	wg.Wait()

	// Singleflight collapses the concurrent fetches; allow for stragglers
	// that started after the first fetch completed.
	require.LessOrEqual(t, remote.opens.Load(), int64(8))
	require.GreaterOrEqual(t, remote.opens.Load(), int64(1))
}

func TestCachingStore_WriteThroughInvalidates(t *testing.T) {
	ctx := context.Background()
	remote := &countingStore{BlobStore: NewMemoryStore()}
	require.NoError(t, remote.BlobStore.Put(ctx, "t", []byte("v1")))

	store, err := NewCachingStore(remote, t.TempDir())
	require.NoError(t, err)

	b, err := store.Open(ctx, "t")
	require.NoError(t, err)
	require.Equal(t, "v1", string(readAll(t, ctx, b)))
	require.NoError(t, b.Close())

	require.NoError(t, store.Put(ctx, "t", []byte("v2")))

	b, err = store.Open(ctx, "t")
	require.NoError(t, err)
	require.Equal(t, "v2", string(readAll(t, ctx, b)))
	require.NoError(t, b.Close())
}

func TestCachingStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store, err := NewCachingStore(NewMemoryStore(), t.TempDir())
	require.NoError(t, err)

	_, err = store.Open(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

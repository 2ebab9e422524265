package blobstore

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/singleflight"
)

// CachingStore mirrors blobs from a remote store into a local directory
// and serves reads from the mirror. Pretrained embedding files are large
// and immutable, so whole-blob mirroring beats block caching here.
// Concurrent fetches of the same blob are collapsed with singleflight.
type CachingStore struct {
	remote BlobStore
	local  *LocalStore
	group  singleflight.Group
}

// NewCachingStore creates a CachingStore mirroring remote into cacheDir.
func NewCachingStore(remote BlobStore, cacheDir string) (*CachingStore, error) {
	local, err := NewLocalStore(cacheDir)
	if err != nil {
		return nil, err
	}
	return &CachingStore{remote: remote, local: local}, nil
}

// Open opens a blob, fetching it into the mirror first if needed.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	if b, err := s.local.Open(ctx, name); err == nil {
		return b, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if _, err, _ := s.group.Do(name, func() (any, error) {
		return nil, s.fetch(ctx, name)
	}); err != nil {
		return nil, err
	}

	return s.local.Open(ctx, name)
}

func (s *CachingStore) fetch(ctx context.Context, name string) error {
	// Another waiter may have completed the fetch already.
	if names, err := s.local.List(ctx, name); err == nil {
		for _, n := range names {
			if n == name {
				return nil
			}
		}
	}

	src, err := s.remote.Open(ctx, name)
	if err != nil {
		return err
	}
	defer src.Close()

	r, err := src.ReadRange(ctx, 0, src.Size())
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := s.local.Create(ctx, name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		return err
	}
	return w.Close()
}

// Create writes through to the remote store and drops any stale mirror.
func (s *CachingStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	if err := s.local.Delete(ctx, name); err != nil {
		return nil, err
	}
	return s.remote.Create(ctx, name)
}

// Put writes through to the remote store and drops any stale mirror.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.local.Delete(ctx, name); err != nil {
		return err
	}
	return s.remote.Put(ctx, name, data)
}

// Delete removes the blob from both the remote store and the mirror.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	if err := s.local.Delete(ctx, name); err != nil {
		return err
	}
	return s.remote.Delete(ctx, name)
}

// List lists the remote store; the mirror may lag behind it.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.remote.List(ctx, prefix)
}

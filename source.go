package embedgo

import (
	"context"
	"io"
	"os"

	"github.com/yangminglab/embedgo/blobstore"
)

// Source locates an embedding file for the Load constructors.
type Source interface {
	open(ctx context.Context) (io.ReadCloser, error)
	name() string
}

// Local reads from a path on the local filesystem.
func Local(path string) Source {
	return localSource(path)
}

type localSource string

func (s localSource) open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(string(s))
}

func (s localSource) name() string {
	return string(s)
}

// Remote reads the named blob from a BlobStore.
func Remote(store blobstore.BlobStore, name string) Source {
	return &remoteSource{store: store, key: name}
}

type remoteSource struct {
	store blobstore.BlobStore
	key   string
}

func (s *remoteSource) open(ctx context.Context) (io.ReadCloser, error) {
	b, err := s.store.Open(ctx, s.key)
	if err != nil {
		return nil, err
	}
	r, err := b.ReadRange(ctx, 0, b.Size())
	if err != nil {
		b.Close()
		return nil, err
	}
	return &blobReader{r: r, blob: b}, nil
}

func (s *remoteSource) name() string {
	return s.key
}

// blobReader ties the range reader's lifetime to its blob handle.
type blobReader struct {
	r    io.ReadCloser
	blob blobstore.Blob
}

func (br *blobReader) Read(p []byte) (int, error) {
	return br.r.Read(p)
}

func (br *blobReader) Close() error {
	err := br.r.Close()
	if cerr := br.blob.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

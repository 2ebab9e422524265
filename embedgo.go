package embedgo

import (
	"context"
	"io"

	"github.com/yangminglab/embedgo/blobstore"
	"github.com/yangminglab/embedgo/matrix"
	"github.com/yangminglab/embedgo/snapshot"
	"github.com/yangminglab/embedgo/table"
	"github.com/yangminglab/embedgo/vocab"
)

// Lookuper is the read-only contract an Embedding satisfies.
// Collaborators that only query vectors can depend on it instead of the
// concrete type.
type Lookuper interface {
	// Lookup returns the vector for token.
	Lookup(token string) ([]float32, error)
	// LookupAll returns one vector per requested token, stacked in
	// request order. It fails on the first unknown token with no
	// partial result.
	LookupAll(tokens ...string) ([][]float32, error)
	// Contains reports whether token is indexed.
	Contains(token string) bool
	// Dimension returns the embedding dimension D.
	Dimension() int
}

// TableReader reads one pretrained embedding file format. table.Reader
// implements it for the word2vec and GloVe text variants; custom formats
// plug in here.
type TableReader interface {
	ReadTable(r io.Reader) (*table.Table, error)
}

// Embedding composes a vocabulary index with a dense vector matrix.
// Row i of the matrix is the vector for the token indexed at i; the pair
// is built in one shot and immutable afterwards, so concurrent lookups
// need no synchronization.
type Embedding struct {
	index  *vocab.Index
	matrix *matrix.Dense
}

var _ Lookuper = (*Embedding)(nil)

// New composes an existing index and matrix. The two must be in
// lock-step: index size equals matrix row count.
func New(index *vocab.Index, m *matrix.Dense) (*Embedding, error) {
	if index.Len() != m.Rows() {
		return nil, &ErrDimensionMismatch{Expected: index.Len(), Actual: m.Rows()}
	}
	return &Embedding{index: index, matrix: m}, nil
}

// NewRandom builds an embedding over index with every component drawn
// independently and uniformly from [-scale, scale] (WithScale, default
// DefaultScale). Pass WithSeed for reproducibility; the default RNG is
// time-seeded.
func NewRandom(index *vocab.Index, dimension int, optFns ...Option) (*Embedding, error) {
	o := applyOptions(optFns)

	m, err := matrix.Random(index.Len(), dimension, o.scale, o.rng)
	if err != nil {
		return nil, translateError(err)
	}

	o.logger.LogRandomInit(context.Background(), index.Len(), dimension, o.scale)

	return &Embedding{index: index, matrix: m}, nil
}

// LoadWord2Vec loads a word2vec-style text file: the "<vocab> <dim>"
// header line is skipped, every other line is "token v1 v2 ...".
func LoadWord2Vec(ctx context.Context, src Source, optFns ...Option) (*Embedding, error) {
	return LoadPretrained(ctx, src, table.Word2Vec(), optFns...)
}

// LoadGlove loads a GloVe-style text file: no header, tokens parse
// literally with no quote handling.
func LoadGlove(ctx context.Context, src Source, optFns ...Option) (*Embedding, error) {
	return LoadPretrained(ctx, src, table.Glove(), optFns...)
}

// LoadPretrained loads an embedding through any TableReader. The
// vocabulary is derived from the parsed row labels, in table order, so
// index and matrix cannot diverge. Any failure aborts the whole load;
// no partially-built Embedding is ever returned.
func LoadPretrained(ctx context.Context, src Source, rd TableReader, optFns ...Option) (*Embedding, error) {
	o := applyOptions(optFns)

	r, err := src.open(ctx)
	if err != nil {
		o.logger.LogLoad(ctx, src.name(), 0, 0, err)
		return nil, err
	}
	defer r.Close()

	tbl, err := rd.ReadTable(r)
	if err != nil {
		err = translateError(err)
		o.logger.LogLoad(ctx, src.name(), 0, 0, err)
		return nil, err
	}

	idx, err := vocab.NewIndex(tbl.Tokens)
	if err != nil {
		return nil, translateError(err)
	}
	m, err := matrix.FromVectors(tbl.Vectors)
	if err != nil {
		return nil, translateError(err)
	}

	o.logger.LogLoad(ctx, src.name(), m.Rows(), m.Dimension(), nil)

	return &Embedding{index: idx, matrix: m}, nil
}

// LoadSnapshot re-opens an embedding persisted with SaveSnapshot.
func LoadSnapshot(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Embedding, error) {
	o := applyOptions(optFns)

	idx, m, err := snapshot.Load(ctx, store, name)
	o.logger.LogSnapshot(ctx, "load", name, err)
	if err != nil {
		return nil, err
	}
	return &Embedding{index: idx, matrix: m}, nil
}

// Lookup returns the vector for token. The slice is a copy; mutating it
// does not affect the embedding.
func (e *Embedding) Lookup(token string) ([]float32, error) {
	row, err := e.index.RowOf(token)
	if err != nil {
		return nil, translateError(err)
	}
	return e.matrix.Row(row)
}

// LookupAll returns one vector per requested token, stacked in request
// order regardless of storage row order. All tokens are resolved before
// any row is materialized, so an unknown token fails the call atomically.
func (e *Embedding) LookupAll(tokens ...string) ([][]float32, error) {
	rows := make([]int, len(tokens))
	for i, t := range tokens {
		row, err := e.index.RowOf(t)
		if err != nil {
			return nil, translateError(err)
		}
		rows[i] = row
	}

	out := make([][]float32, len(rows))
	for i, row := range rows {
		vec, err := e.matrix.Row(row)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

// Contains reports whether token is indexed. It never fails.
func (e *Embedding) Contains(token string) bool {
	return e.index.Contains(token)
}

// Dimension returns the embedding dimension D.
func (e *Embedding) Dimension() int {
	return e.matrix.Dimension()
}

// Len returns the vocabulary size N.
func (e *Embedding) Len() int {
	return e.index.Len()
}

// Index returns the vocabulary index.
func (e *Embedding) Index() *vocab.Index {
	return e.index
}

// Matrix returns the vector matrix. Treat it as read-only.
func (e *Embedding) Matrix() *matrix.Dense {
	return e.matrix
}

// SaveSnapshot persists the embedding to the store in binary form; see
// package snapshot for the layout. WithCodec controls the vocab section
// encoding.
func (e *Embedding) SaveSnapshot(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) error {
	o := applyOptions(optFns)

	err := snapshot.Save(ctx, store, name, e.index, e.matrix, func(so *snapshot.Options) {
		so.Codec = o.codec
	})
	o.logger.LogSnapshot(ctx, "save", name, err)
	return err
}

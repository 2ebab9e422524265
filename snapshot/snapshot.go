// Package snapshot persists a constructed embedding in a compact binary
// form. Re-opening a snapshot skips text parsing entirely, which matters
// for multi-gigabyte pretrained tables.
//
// Layout:
//
//	magic "EMBSNAP1"
//	header length (uint32 LE) + JSON header {version, codec, rows, dimension}
//	vocab section   (codec-encoded token list)
//	matrix section  (row-major little-endian float32)
//
// Each section is an lz4 block framed as
// [uncompressedSize uint32][compressedSize uint32][data][crc32 uint32];
// compressedSize 0 means the data is stored uncompressed. The header is
// always standard JSON so files stay self-describing: the codec named in
// it is looked up by name before the vocab section is decoded.
package snapshot

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/pierrec/lz4/v4"

	"github.com/yangminglab/embedgo/blobstore"
	"github.com/yangminglab/embedgo/codec"
	"github.com/yangminglab/embedgo/matrix"
	"github.com/yangminglab/embedgo/vocab"
)

var (
	// ErrBadMagic is returned when the input is not a snapshot file.
	ErrBadMagic = errors.New("snapshot: bad magic")

	// ErrChecksum is returned when a section fails CRC verification.
	ErrChecksum = errors.New("snapshot: checksum mismatch")
)

// ErrUnknownCodec indicates a snapshot whose header names a codec this
// build does not know.
type ErrUnknownCodec struct {
	Name string
}

func (e *ErrUnknownCodec) Error() string {
	return fmt.Sprintf("snapshot: unknown codec %q", e.Name)
}

var magic = [8]byte{'E', 'M', 'B', 'S', 'N', 'A', 'P', '1'}

const (
	formatVersion = 1

	// Header JSON larger than this indicates corruption, not a header.
	maxHeaderBytes = 1 << 20
)

type header struct {
	Version   int    `json:"version"`
	Codec     string `json:"codec"`
	Rows      int    `json:"rows"`
	Dimension int    `json:"dimension"`
}

// Options configures snapshot encoding.
type Options struct {
	// Codec encodes the vocab section. Defaults to codec.Default; the
	// chosen name is recorded in the header.
	Codec codec.Codec
}

// Write encodes idx and m to w.
func Write(w io.Writer, idx *vocab.Index, m *matrix.Dense, optFns ...func(*Options)) error {
	opts := Options{Codec: codec.Default}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}

	if idx.Len() != m.Rows() {
		return fmt.Errorf("snapshot: vocab size %d does not match matrix rows %d", idx.Len(), m.Rows())
	}

	hdr, err := json.Marshal(header{
		Version:   formatVersion,
		Codec:     opts.Codec.Name(),
		Rows:      m.Rows(),
		Dimension: m.Dimension(),
	})
	if err != nil {
		return err
	}

	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(hdr))); err != nil {
		return err
	}
	if _, err := w.Write(hdr); err != nil {
		return err
	}

	tokens, err := opts.Codec.Marshal(idx.Tokens())
	if err != nil {
		return err
	}
	if err := writeSection(w, tokens); err != nil {
		return err
	}
	return writeSection(w, floatsToBytes(m.Data()))
}

// Read decodes a snapshot written by Write.
func Read(r io.Reader) (*vocab.Index, *matrix.Dense, error) {
	var gotMagic [8]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, nil, fmt.Errorf("snapshot: read magic: %w", err)
	}
	if gotMagic != magic {
		return nil, nil, ErrBadMagic
	}

	var hdrLen uint32
	if err := binary.Read(r, binary.LittleEndian, &hdrLen); err != nil {
		return nil, nil, err
	}
	if hdrLen > maxHeaderBytes {
		return nil, nil, fmt.Errorf("snapshot: header length %d exceeds limit", hdrLen)
	}
	hdrBytes := make([]byte, hdrLen)
	if _, err := io.ReadFull(r, hdrBytes); err != nil {
		return nil, nil, err
	}

	var hdr header
	if err := json.Unmarshal(hdrBytes, &hdr); err != nil {
		return nil, nil, fmt.Errorf("snapshot: decode header: %w", err)
	}
	if hdr.Version != formatVersion {
		return nil, nil, fmt.Errorf("snapshot: unsupported version %d", hdr.Version)
	}
	c, ok := codec.ByName(hdr.Codec)
	if !ok {
		return nil, nil, &ErrUnknownCodec{Name: hdr.Codec}
	}

	tokensPayload, err := readSection(r)
	if err != nil {
		return nil, nil, err
	}
	var tokens []string
	if err := c.Unmarshal(tokensPayload, &tokens); err != nil {
		return nil, nil, fmt.Errorf("snapshot: decode vocab: %w", err)
	}
	if len(tokens) != hdr.Rows {
		return nil, nil, fmt.Errorf("snapshot: header says %d rows, vocab has %d", hdr.Rows, len(tokens))
	}

	matrixPayload, err := readSection(r)
	if err != nil {
		return nil, nil, err
	}
	floats, err := bytesToFloats(matrixPayload)
	if err != nil {
		return nil, nil, err
	}

	m, err := matrix.FromData(floats, hdr.Rows, hdr.Dimension)
	if err != nil {
		return nil, nil, err
	}
	idx, err := vocab.NewIndex(tokens)
	if err != nil {
		return nil, nil, err
	}
	return idx, m, nil
}

// Save writes a snapshot blob to the store. A failed write is removed
// rather than left half-visible.
func Save(ctx context.Context, store blobstore.BlobStore, name string, idx *vocab.Index, m *matrix.Dense, optFns ...func(*Options)) error {
	w, err := store.Create(ctx, name)
	if err != nil {
		return err
	}
	if err := Write(w, idx, m, optFns...); err != nil {
		_ = w.Close()
		_ = store.Delete(ctx, name)
		return err
	}
	return w.Close()
}

// Load reads a snapshot blob from the store.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (*vocab.Index, *matrix.Dense, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	defer b.Close()

	r, err := b.ReadRange(ctx, 0, b.Size())
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	return Read(r)
}

func writeSection(w io.Writer, payload []byte) error {
	var c lz4.Compressor
	compressed := make([]byte, lz4.CompressBlockBound(len(payload)))
	n, err := c.CompressBlock(payload, compressed)
	if err != nil {
		return err
	}

	data := payload
	var compSize uint32
	if n > 0 && n < len(payload) {
		data = compressed[:n]
		compSize = uint32(n)
	}

	var frame [8]byte
	binary.LittleEndian.PutUint32(frame[0:], uint32(len(payload)))
	binary.LittleEndian.PutUint32(frame[4:], compSize)
	if _, err := w.Write(frame[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, crc32.ChecksumIEEE(data))
}

func readSection(r io.Reader) ([]byte, error) {
	var frame [8]byte
	if _, err := io.ReadFull(r, frame[:]); err != nil {
		return nil, fmt.Errorf("snapshot: read section frame: %w", err)
	}
	uncompressedSize := binary.LittleEndian.Uint32(frame[0:])
	compSize := binary.LittleEndian.Uint32(frame[4:])

	size := compSize
	if size == 0 {
		size = uncompressedSize
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("snapshot: read section data: %w", err)
	}

	var sum uint32
	if err := binary.Read(r, binary.LittleEndian, &sum); err != nil {
		return nil, err
	}
	if crc32.ChecksumIEEE(data) != sum {
		return nil, ErrChecksum
	}

	if compSize == 0 {
		return data, nil
	}
	out := make([]byte, uncompressedSize)
	n, err := lz4.UncompressBlock(data, out)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress section: %w", err)
	}
	return out[:n], nil
}

func floatsToBytes(data []float32) []byte {
	out := make([]byte, len(data)*4)
	for i, f := range data {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

func bytesToFloats(data []byte) ([]float32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("snapshot: matrix section length %d is not a multiple of 4", len(data))
	}
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out, nil
}

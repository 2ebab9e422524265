package table

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// decompress wraps src with the decompressor matching its leading magic
// bytes. Pretrained archives commonly ship gzip- or zstd-compressed;
// plain text passes through unchanged. The returned reader may implement
// io.Closer, in which case the caller owns closing it.
func decompress(src io.Reader) (io.Reader, error) {
	br := bufio.NewReader(src)

	// Peek fails on inputs shorter than 4 bytes; whatever prefix exists
	// is still enough to rule the magics in or out.
	magic, _ := br.Peek(4)

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		return gzip.NewReader(br)
	case bytes.Equal(magic, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	default:
		return br, nil
	}
}

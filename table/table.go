// Package table parses whitespace-delimited embedding tables in the
// word2vec and GloVe text formats.
//
// Both formats put one token per line followed by its vector components.
// Word2vec files carry a "<vocab> <dim>" header line that is skipped;
// GloVe files start with data immediately. Splitting is plain whitespace
// with no quote or escape handling, so punctuation-only tokens such as
// `"` or `,` parse literally.
package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmptyTable is returned when the input contains no data rows.
var ErrEmptyTable = errors.New("embedding table has no data rows")

// ErrMalformedRow indicates a row that disagrees with the established
// dimension or carries a non-numeric component.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformedRow struct {
	Line     int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrMalformedRow) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("malformed row at line %d: %v", e.Line, e.cause)
	}
	return fmt.Sprintf("malformed row at line %d: expected %d components, got %d", e.Line, e.Expected, e.Actual)
}

func (e *ErrMalformedRow) Unwrap() error { return e.cause }

// ErrDuplicateToken indicates two rows sharing a token. Duplicates are a
// hard error rather than a silent last-wins overwrite, since an overwrite
// would mask data-quality issues in the source file.
type ErrDuplicateToken struct {
	Token string
	Line  int
}

func (e *ErrDuplicateToken) Error() string {
	return fmt.Sprintf("duplicate token %q at line %d", e.Token, e.Line)
}

// Table is the parsed (token, vector) sequence in file order.
type Table struct {
	Tokens  []string
	Vectors [][]float32
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Tokens)
}

// Dimension returns the vector dimension, or 0 for an empty table.
func (t *Table) Dimension() int {
	if len(t.Vectors) == 0 {
		return 0
	}
	return len(t.Vectors[0])
}

// Reader parses one embedding table variant.
type Reader struct {
	// SkipHeader skips the first line of the input. Word2vec-style files
	// start with a "<vocab> <dim>" pair that is not a data row.
	SkipHeader bool
}

// Word2Vec returns a Reader for word2vec-style files (header line skipped).
func Word2Vec() *Reader {
	return &Reader{SkipHeader: true}
}

// Glove returns a Reader for GloVe-style files (no header).
func Glove() *Reader {
	return &Reader{}
}

// Lines longer than this abort the parse. GloVe 300d rows are ~4KB, so
// this leaves two orders of magnitude of headroom.
const maxLineBytes = 1 << 20

// ReadTable parses src into a Table. Gzip- and zstd-compressed inputs are
// decompressed transparently. The dimension is established by the first
// data row; any later row with a different component count fails with
// ErrMalformedRow, and a repeated token fails with ErrDuplicateToken.
func (r *Reader) ReadTable(src io.Reader) (*Table, error) {
	plain, err := decompress(src)
	if err != nil {
		return nil, err
	}
	if c, ok := plain.(io.Closer); ok {
		defer c.Close()
	}

	sc := bufio.NewScanner(plain)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		tokens  []string
		vectors [][]float32
		rows    = make(map[string]struct{})
		dim     = -1
		line    = 0
	)

	if r.SkipHeader && sc.Scan() {
		line++
	}

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if dim == -1 {
			if len(fields) < 2 {
				return nil, &ErrMalformedRow{Line: line, Expected: 1, Actual: 0}
			}
			dim = len(fields) - 1
		} else if len(fields)-1 != dim {
			return nil, &ErrMalformedRow{Line: line, Expected: dim, Actual: len(fields) - 1}
		}

		token := fields[0]
		if _, ok := rows[token]; ok {
			return nil, &ErrDuplicateToken{Token: token, Line: line}
		}
		rows[token] = struct{}{}

		vec := make([]float32, dim)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, &ErrMalformedRow{Line: line, Expected: dim, Actual: dim, cause: err}
			}
			vec[i] = float32(v)
		}

		tokens = append(tokens, token)
		vectors = append(vectors, vec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read embedding table: %w", err)
	}

	if len(tokens) == 0 {
		return nil, ErrEmptyTable
	}

	return &Table{Tokens: tokens, Vectors: vectors}, nil
}

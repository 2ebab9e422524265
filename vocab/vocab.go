// Package vocab maps tokens to dense matrix row positions.
//
// An Index is built once from an ordered sequence of distinct tokens; the
// order defines row assignment (0-based, no gaps). Once built, an Index is
// immutable and safe for concurrent reads.
package vocab

import (
	"fmt"
)

// ErrDuplicateToken indicates that two entries share the same token.
type ErrDuplicateToken struct {
	Token string
}

func (e *ErrDuplicateToken) Error() string {
	return fmt.Sprintf("duplicate token %q", e.Token)
}

// ErrUnknownToken indicates a lookup for a token that is not indexed.
type ErrUnknownToken struct {
	Token string
}

func (e *ErrUnknownToken) Error() string {
	return fmt.Sprintf("unknown token %q", e.Token)
}

// ErrRowOutOfRange indicates a row id outside [0, Len).
type ErrRowOutOfRange struct {
	Row  int
	Rows int
}

func (e *ErrRowOutOfRange) Error() string {
	return fmt.Sprintf("row %d out of range [0, %d)", e.Row, e.Rows)
}

// Index is a bidirectional mapping between tokens and dense row ids.
type Index struct {
	rows   map[string]int
	tokens []string
}

// NewIndex builds an Index from an ordered sequence of tokens.
// Row ids are assigned in input order. A repeated token fails with
// ErrDuplicateToken.
func NewIndex(tokens []string) (*Index, error) {
	rows := make(map[string]int, len(tokens))
	owned := make([]string, len(tokens))
	for i, t := range tokens {
		if _, ok := rows[t]; ok {
			return nil, &ErrDuplicateToken{Token: t}
		}
		rows[t] = i
		owned[i] = t
	}
	return &Index{rows: rows, tokens: owned}, nil
}

// Contains reports whether token is indexed.
func (x *Index) Contains(token string) bool {
	_, ok := x.rows[token]
	return ok
}

// RowOf returns the row id assigned to token.
func (x *Index) RowOf(token string) (int, error) {
	row, ok := x.rows[token]
	if !ok {
		return 0, &ErrUnknownToken{Token: token}
	}
	return row, nil
}

// TokenAt returns the token assigned to row.
func (x *Index) TokenAt(row int) (string, error) {
	if row < 0 || row >= len(x.tokens) {
		return "", &ErrRowOutOfRange{Row: row, Rows: len(x.tokens)}
	}
	return x.tokens[row], nil
}

// Len returns the number of indexed tokens.
func (x *Index) Len() int {
	return len(x.tokens)
}

// Tokens returns all tokens in row order. The returned slice is a copy.
func (x *Index) Tokens() []string {
	out := make([]string, len(x.tokens))
	copy(out, x.tokens)
	return out
}

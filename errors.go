package embedgo

import (
	"errors"
	"fmt"

	"github.com/yangminglab/embedgo/matrix"
	"github.com/yangminglab/embedgo/table"
	"github.com/yangminglab/embedgo/vocab"
)

var (
	// ErrEmptyTable is returned when an embedding file has no data rows.
	ErrEmptyTable = errors.New("embedding table is empty")
)

// ErrUnknownToken indicates a lookup for a token that is not indexed.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUnknownToken struct {
	Token string
	cause error
}

func (e *ErrUnknownToken) Error() string {
	return fmt.Sprintf("unknown token %q", e.Token)
}

func (e *ErrUnknownToken) Unwrap() error { return e.cause }

// ErrDuplicateToken indicates two rows sharing a token.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDuplicateToken struct {
	Token string
	cause error
}

func (e *ErrDuplicateToken) Error() string {
	return fmt.Sprintf("duplicate token %q", e.Token)
}

func (e *ErrDuplicateToken) Unwrap() error { return e.cause }

// ErrMalformedRow indicates a file row that disagrees with the
// established dimension or carries a non-numeric component.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformedRow struct {
	Line     int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrMalformedRow) Error() string {
	return fmt.Sprintf("malformed row at line %d", e.Line)
}

func (e *ErrMalformedRow) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates vocabulary and matrix shapes that do
// not agree.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ut *vocab.ErrUnknownToken
	if errors.As(err, &ut) {
		return &ErrUnknownToken{Token: ut.Token, cause: err}
	}

	var vdt *vocab.ErrDuplicateToken
	if errors.As(err, &vdt) {
		return &ErrDuplicateToken{Token: vdt.Token, cause: err}
	}
	var tdt *table.ErrDuplicateToken
	if errors.As(err, &tdt) {
		return &ErrDuplicateToken{Token: tdt.Token, cause: err}
	}

	var mr *table.ErrMalformedRow
	if errors.As(err, &mr) {
		return &ErrMalformedRow{Line: mr.Line, Expected: mr.Expected, Actual: mr.Actual, cause: err}
	}

	var dm *matrix.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}

	if errors.Is(err, table.ErrEmptyTable) {
		return fmt.Errorf("%w: %w", ErrEmptyTable, err)
	}

	return err
}

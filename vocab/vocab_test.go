package vocab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIndex(t *testing.T) {
	idx, err := NewIndex([]string{"fawn", "abandon", "cat"})
	require.NoError(t, err)
	require.Equal(t, 3, idx.Len())

	// Row assignment follows input order.
	row, err := idx.RowOf("abandon")
	require.NoError(t, err)
	require.Equal(t, 1, row)

	tok, err := idx.TokenAt(2)
	require.NoError(t, err)
	require.Equal(t, "cat", tok)

	require.True(t, idx.Contains("fawn"))
	require.False(t, idx.Contains("oov"))
}

func TestNewIndex_DuplicateToken(t *testing.T) {
	_, err := NewIndex([]string{"a", "b", "a"})
	require.Error(t, err)

	var dup *ErrDuplicateToken
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "a", dup.Token)
}

func TestIndex_UnknownToken(t *testing.T) {
	idx, err := NewIndex([]string{"a"})
	require.NoError(t, err)

	_, err = idx.RowOf("missing")
	var unknown *ErrUnknownToken
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "missing", unknown.Token)
}

func TestIndex_TokenAtOutOfRange(t *testing.T) {
	idx, err := NewIndex([]string{"a", "b"})
	require.NoError(t, err)

	_, err = idx.TokenAt(2)
	var oor *ErrRowOutOfRange
	require.ErrorAs(t, err, &oor)
	require.Equal(t, 2, oor.Row)
	require.Equal(t, 2, oor.Rows)

	_, err = idx.TokenAt(-1)
	require.ErrorAs(t, err, &oor)
}

func TestIndex_TokensIsCopy(t *testing.T) {
	idx, err := NewIndex([]string{"a", "b"})
	require.NoError(t, err)

	tokens := idx.Tokens()
	require.Equal(t, []string{"a", "b"}, tokens)

	tokens[0] = "mutated"
	tok, err := idx.TokenAt(0)
	require.NoError(t, err)
	require.Equal(t, "a", tok)
}

func TestNewIndex_Empty(t *testing.T) {
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	require.Equal(t, 0, idx.Len())
	require.False(t, idx.Contains(""))
}

package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yangminglab/embedgo/util"
)

func TestFromVectors(t *testing.T) {
	m, err := FromVectors([][]float32{
		{0.1, 0.2},
		{0.3, 0.4},
		{0.5, 0.6},
	})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Dimension())

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float32{0.3, 0.4}, row)
}

func TestFromVectors_Ragged(t *testing.T) {
	_, err := FromVectors([][]float32{
		{0.1, 0.2},
		{0.3, 0.4, 0.5},
	})
	var mismatch *ErrDimensionMismatch
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, 2, mismatch.Expected)
	require.Equal(t, 3, mismatch.Actual)
}

func TestRow_OutOfRange(t *testing.T) {
	m, err := NewDense(2, 4)
	require.NoError(t, err)

	var oor *ErrRowOutOfRange
	_, err = m.Row(2)
	require.ErrorAs(t, err, &oor)
	require.Equal(t, 2, oor.Row)

	_, err = m.Row(-1)
	require.ErrorAs(t, err, &oor)
}

func TestRow_IsCopy(t *testing.T) {
	m, err := FromVectors([][]float32{{1, 2}})
	require.NoError(t, err)

	row, err := m.Row(0)
	require.NoError(t, err)
	row[0] = 99

	again, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, float32(1), again[0])
}

func TestRandom_Bounds(t *testing.T) {
	m, err := Random(16, 4, 0.5, util.NewRNG(4711))
	require.NoError(t, err)
	require.Equal(t, 4, m.Dimension())

	for _, v := range m.Data() {
		require.LessOrEqual(t, v, float32(0.5))
		require.GreaterOrEqual(t, v, float32(-0.5))
	}
}

func TestRandom_NilRNG(t *testing.T) {
	m, err := Random(2, 3, 0.2, nil)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Dimension())
}

func TestNewDense_InvalidDimension(t *testing.T) {
	var invalid *ErrInvalidDimension
	_, err := NewDense(2, 0)
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, 0, invalid.Dimension)
}

func TestFromData(t *testing.T) {
	m, err := FromData([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	row, err := m.RowView(1)
	require.NoError(t, err)
	require.Equal(t, []float32{4, 5, 6}, row)

	_, err = FromData([]float32{1, 2, 3}, 2, 3)
	var mismatch *ErrDimensionMismatch
	require.ErrorAs(t, err, &mismatch)
}

package numutil

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInts(t *testing.T) {
	t.Parallel()

	got, err := Ints("3   4\t-5 ")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, -5}, got)

	got, err = Ints("   ")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Ints("1 two 3")
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.ErrorContains(t, err, `"two"`)
}

func TestAbsDiff(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, AbsDiff(3, 1))
	assert.Equal(t, 2, AbsDiff(1, 3))
	assert.Equal(t, int64(0), AbsDiff(int64(7), int64(7)))
	assert.Equal(t, int8(5), AbsDiff(int8(-2), int8(3)))
}

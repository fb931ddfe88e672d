package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlias1D(t *testing.T) {
	s := make([]int, 8, 16)
	require.True(t, Alias1D(s, s))
	require.True(t, Alias1D(s[:2], s[4:]))
	require.False(t, Alias1D(s, make([]int, 8)))
	require.False(t, Alias1D(s, nil))
}

func TestReverseSliceInPlace(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	ReverseSliceInPlace(s)
	require.Equal(t, []int{5, 4, 3, 2, 1}, s)

	s = []int{1, 2}
	ReverseSliceInPlace(s)
	require.Equal(t, []int{2, 1}, s)

	ReverseSliceInPlace([]int{})
}

package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	s := FromSlice([]int{1, 2, 1, 4, 5, 1})
	require.Equal(t, 4, s.Len())
	assert.ElementsMatch(t, []int{1, 2, 4, 5}, s.Values())
}

func TestFromSliceEmpty(t *testing.T) {
	s := FromSlice([]string{})
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Values())
}

func TestAddContains(t *testing.T) {
	s := New[string](0)
	assert.False(t, s.Contains("a"))

	s.Add("a")
	s.Add("a")
	assert.True(t, s.Contains("a"))
	assert.Equal(t, 1, s.Len())

	s.AddAll([]string{"a", "b", "c"})
	assert.Equal(t, 3, s.Len())
	assert.ElementsMatch(t, []string{"a", "b", "c"}, s.Values())
}

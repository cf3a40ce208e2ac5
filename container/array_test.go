package container_test

import (
	"testing"

	"github.com/omerfuyar/shuildgo/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayAddRemovePop(t *testing.T) {
	a := container.NewArray[int](2)
	a.Add(1)
	a.Add(2)
	a.Add(3)
	require.Equal(t, 3, a.Count())
	assert.Equal(t, 2, *a.Get(1))

	a.RemoveAtIndex(0)
	require.Equal(t, 2, a.Count())
	assert.Equal(t, 2, *a.Get(0))
	assert.Equal(t, 3, *a.Get(1))

	v, ok := a.Pop()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, a.Count())
}

func TestArrayCountInvariant(t *testing.T) {
	a := container.NewArray[int](0)
	added, removed := 0, 0
	for i := 0; i < 10; i++ {
		a.Add(i)
		added++
	}
	a.RemoveAtIndex(3)
	removed++
	a.RemoveAtIndex(0)
	removed++
	if _, ok := a.Pop(); ok {
		removed++
	}
	assert.Equal(t, added-removed, a.Count())
}

func TestArrayIndexOf(t *testing.T) {
	a := container.NewArray[string](4)
	a.Add("x")
	a.Add("y")
	a.Add("z")
	idx := a.IndexOf("y", func(x, y string) bool { return x == y })
	assert.Equal(t, 1, idx)
	idx = a.IndexOf("nope", func(x, y string) bool { return x == y })
	assert.Equal(t, -1, idx)
}

func TestArrayClearKeepsCapacity(t *testing.T) {
	a := container.NewArray[int](8)
	a.Add(1)
	a.Add(2)
	capBefore := a.Cap()
	a.Clear()
	assert.Equal(t, 0, a.Count())
	assert.Equal(t, capBefore, a.Cap())
}

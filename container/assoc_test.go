package container_test

import (
	"fmt"
	"testing"

	"github.com/omerfuyar/shuildgo/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSetGet(t *testing.T) {
	m := container.NewMap[int](4)
	m.Set("alpha", 1)
	m.Set("beta", 2)

	v, ok := m.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMapResolvesCollisions(t *testing.T) {
	// Force many keys into a tiny table so collisions are guaranteed and
	// every one of them must still be retrievable (open addressing, not
	// the reference implementation's unresolved-collision behavior).
	m := container.NewMap[int](2)
	for i := 0; i < 20; i++ {
		m.Set(fmt.Sprintf("key-%d", i), i)
	}
	for i := 0; i < 20; i++ {
		v, ok := m.Get(fmt.Sprintf("key-%d", i))
		require.True(t, ok, "key-%d should be retrievable", i)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 20, m.Count())
}

func TestMapDelete(t *testing.T) {
	m := container.NewMap[int](4)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Delete("a")
	_, ok := m.Get("a")
	assert.False(t, ok)
	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

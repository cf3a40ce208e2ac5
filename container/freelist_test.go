package container_test

import (
	"testing"

	"github.com/omerfuyar/shuildgo/container"
	"github.com/stretchr/testify/assert"
)

func TestFreeListRecyclesHandles(t *testing.T) {
	fl := &container.FreeList{}
	a := fl.Create()
	b := fl.Create()
	assert.NotEqual(t, a, b)

	fl.Destroy(a)
	c := fl.Create()
	assert.Equal(t, a, c, "a freed handle may be handed back out by the next Create")
}

func TestFreeListCountPlusFreeNeverExceedsCapacity(t *testing.T) {
	fl := &container.FreeList{}
	handles := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		handles = append(handles, fl.Create())
	}
	fl.Destroy(handles[0])
	fl.Destroy(handles[2])

	seen := map[int]bool{}
	for _, h := range handles {
		if h == handles[0] || h == handles[2] {
			continue
		}
		assert.False(t, seen[h])
		seen[h] = true
	}
	assert.Equal(t, 2, fl.FreeCount())
	assert.LessOrEqual(t, len(seen)+fl.FreeCount(), fl.Count())
}

package container_test

import (
	"testing"

	"github.com/omerfuyar/shuildgo/container"
	"github.com/stretchr/testify/assert"
)

func TestListAppendStablePointers(t *testing.T) {
	l := &container.List[int]{}
	p1 := l.Append(1)
	p2 := l.Append(2)
	p3 := l.Append(3)

	assert.Equal(t, 3, l.Count())

	var seen []int
	l.Each(func(v *int) { seen = append(seen, *v) })
	assert.Equal(t, []int{1, 2, 3}, seen)

	// Appending more must not invalidate earlier pointers.
	l.Append(4)
	assert.Equal(t, 1, *p1)
	assert.Equal(t, 2, *p2)
	assert.Equal(t, 3, *p3)
}

func TestListDestroy(t *testing.T) {
	l := &container.List[int]{}
	l.Append(1)
	l.Append(2)
	l.Destroy()
	assert.Equal(t, 0, l.Count())
}

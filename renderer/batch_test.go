package renderer

import (
	"testing"

	"github.com/omerfuyar/shuildgo/model"
	"github.com/omerfuyar/shuildgo/vmath"
	"github.com/stretchr/testify/assert"
)

func TestBatchCreateComponentGrowsMatricesInStep(t *testing.T) {
	b := newBatch(&model.Model{Name: "cube"})
	var p1, r1, s1 vmath.Vec3
	s1 = vmath.Vec3{1, 1, 1}

	c1 := b.CreateComponent(&p1, &r1, &s1)
	assert.Equal(t, Component(0), c1)
	assert.Equal(t, 1, b.InstanceCount())
	assert.Equal(t, b.components.Count(), len(b.matrices))
}

func TestBatchDestroyThenCreateRecyclesHandle(t *testing.T) {
	b := newBatch(&model.Model{Name: "cube"})
	var p, r, s vmath.Vec3

	c1 := b.CreateComponent(&p, &r, &s)
	c2 := b.CreateComponent(&p, &r, &s)
	b.DestroyComponent(c1)

	assert.False(t, b.validComponent(c1))
	assert.True(t, b.validComponent(c2))

	c3 := b.CreateComponent(&p, &r, &s)
	assert.Equal(t, c1, c3, "freed handle is recycled before a new dense index is allocated")
}

func TestBatchUpdateMatricesSkipsDestroyedComponents(t *testing.T) {
	b := newBatch(&model.Model{Name: "cube"})
	p1 := vmath.Vec3{1, 0, 0}
	p2 := vmath.Vec3{2, 0, 0}
	var r, s vmath.Vec3
	s = vmath.Vec3{1, 1, 1}

	c1 := b.CreateComponent(&p1, &r, &s)
	b.CreateComponent(&p2, &r, &s)
	b.DestroyComponent(c1)

	b.updateMatrices()

	// component 1's slot is stale (not recomputed) but still counted in
	// InstanceCount; only active components are refreshed by contract.
	assert.Equal(t, vmath.Mat4{}, b.matrices[0], "destroyed component's slot is not recomputed")
	m2 := b.matrices[1]
	assert.InDelta(t, 2.0, m2[12], 1e-5)
}

package physics_test

import (
	"testing"

	"github.com/omerfuyar/shuildgo/physics"
	"github.com/omerfuyar/shuildgo/vmath"
	"github.com/stretchr/testify/assert"
)

func TestGravityAndDragIntegrateVelocityAndPosition(t *testing.T) {
	scene := physics.NewScene(-10, 0.1, 1)
	pos := vmath.Vec3{0, 10, 0}
	c := scene.Create(&pos, vmath.Vec3{0.5, 0.5, 0.5}, 1, false)
	scene.SetVelocity(c, vmath.Vec3{0, 0, 0})

	scene.Update(1.0)

	v := scene.Velocity(c)
	assert.InDelta(t, -9.0, v.Y(), 1e-5, "gravity applies then drag scales by (1-drag)")
	assert.InDelta(t, 10+v.Y(), pos.Y(), 1e-5)
}

func TestStaticBodyNeverIntegrates(t *testing.T) {
	scene := physics.NewScene(-10, 0, 1)
	pos := vmath.Vec3{0, 10, 0}
	c := scene.Create(&pos, vmath.Vec3{0.5, 0.5, 0.5}, 1, true)
	scene.SetVelocity(c, vmath.Vec3{1, 1, 1})
	scene.Update(1.0)
	assert.Equal(t, vmath.Vec3{0, 10, 0}, pos)
}

func TestHandleRecyclesAfterDestroy(t *testing.T) {
	scene := physics.NewScene(0, 0, 1)
	p1 := vmath.Vec3{}
	c1 := scene.Create(&p1, vmath.Vec3{1, 1, 1}, 1, false)
	scene.Destroy(c1)
	p2 := vmath.Vec3{}
	c2 := scene.Create(&p2, vmath.Vec3{1, 1, 1}, 1, false)
	assert.Equal(t, c1, c2)
}

func TestIsCollidingOverlapCommutesOnAxes(t *testing.T) {
	colliding, ov1 := physics.IsColliding(vmath.Vec3{0, 0, 0}, vmath.Vec3{1, 1, 1}, vmath.Vec3{1.5, 0, 0}, vmath.Vec3{1, 1, 1})
	assert.True(t, colliding)
	_, ov2 := physics.IsColliding(vmath.Vec3{1.5, 0, 0}, vmath.Vec3{1, 1, 1}, vmath.Vec3{0, 0, 0}, vmath.Vec3{1, 1, 1})
	assert.Equal(t, ov1, ov2, "overlap is symmetric under argument swap")
}

func TestNonOverlappingBoxesDoNotCollide(t *testing.T) {
	colliding, _ := physics.IsColliding(vmath.Vec3{0, 0, 0}, vmath.Vec3{1, 1, 1}, vmath.Vec3{10, 0, 0}, vmath.Vec3{1, 1, 1})
	assert.False(t, colliding)
}

// TestElasticHeadOnCollisionConservesEnergy mirrors scenario S3: two equal
// masses on a head-on collision with elasticity 1 and no drag exchange
// velocities exactly (1D elastic collision of equal masses).
func TestElasticHeadOnCollisionConservesEnergy(t *testing.T) {
	scene := physics.NewScene(0, 0, 1)
	posA := vmath.Vec3{-0.3, 0, 0}
	posB := vmath.Vec3{0.3, 0, 0}
	a := scene.Create(&posA, vmath.Vec3{0.5, 0.5, 0.5}, 1, false)
	b := scene.Create(&posB, vmath.Vec3{0.5, 0.5, 0.5}, 1, false)
	scene.SetVelocity(a, vmath.Vec3{1, 0, 0})
	scene.SetVelocity(b, vmath.Vec3{-1, 0, 0})

	scene.ResolveCollisions()

	va := scene.Velocity(a)
	vb := scene.Velocity(b)
	assert.InDelta(t, -1.0, va.X(), 1e-4, "equal masses, e=1: velocities swap")
	assert.InDelta(t, 1.0, vb.X(), 1e-4)
}

func TestStaticVsDynamicReflectsOnMinimumOverlapAxis(t *testing.T) {
	scene := physics.NewScene(0, 0, 0.5)
	posStatic := vmath.Vec3{0, 0, 0}
	posDyn := vmath.Vec3{0, 1.8, 0}
	s := scene.Create(&posStatic, vmath.Vec3{1, 1, 1}, 1, true)
	d := scene.Create(&posDyn, vmath.Vec3{1, 1, 1}, 1, false)
	_ = s
	scene.SetVelocity(d, vmath.Vec3{0, -1, 0})

	scene.ResolveCollisions()

	v := scene.Velocity(d)
	assert.InDelta(t, 0.5, v.Y(), 1e-4, "velocity reflects and scales by elasticity")
	assert.Greater(t, posDyn.Y(), 1.9, "dynamic body is pushed out of the static one")
}

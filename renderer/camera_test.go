package renderer

import (
	"testing"

	"github.com/omerfuyar/shuildgo/vmath"
	"github.com/stretchr/testify/assert"
)

func TestCameraForwardFacesNegativeZAtYawMinus90(t *testing.T) {
	pos := vmath.Vec3{0, 0, 5}
	rot := vmath.Vec3{0, -90, 0}
	cam := &Camera{Position: &pos, Rotation: &rot}

	f := cam.Forward()
	assert.InDelta(t, 0.0, f[0], 1e-4)
	assert.InDelta(t, 0.0, f[1], 1e-4)
	assert.InDelta(t, -1.0, f[2], 1e-4)
}

func TestCameraForwardAtZeroRotationFacesPositiveX(t *testing.T) {
	var pos, rot vmath.Vec3
	cam := &Camera{Position: &pos, Rotation: &rot}

	f := cam.Forward()
	assert.InDelta(t, 1.0, f[0], 1e-4)
	assert.InDelta(t, 0.0, f[1], 1e-4)
	assert.InDelta(t, 0.0, f[2], 1e-4)
}

func TestCameraRecomputeOrthographicUsesWindowAndSize(t *testing.T) {
	pos := vmath.Vec3{0, 0, 0}
	rot := vmath.Vec3{0, 0, 0}
	cam := &Camera{Position: &pos, Rotation: &rot, IsPerspective: false, Size: 1000, Near: 0.1, Far: 100}

	cam.recompute(800, 600)
	assert.NotZero(t, cam.proj[0])
}

package vmath_test

import (
	"math"
	"testing"

	"github.com/omerfuyar/shuildgo/vmath"
	"github.com/stretchr/testify/assert"
)

func TestDegRadRoundTrip(t *testing.T) {
	d := float32(90)
	r := vmath.DegToRad(d)
	assert.InDelta(t, math.Pi/2, r, 1e-5)
	assert.InDelta(t, d, vmath.RadToDeg(r), 1e-4)
}

func TestNormalizedZeroFallback(t *testing.T) {
	assert.Equal(t, vmath.Vec3{}, vmath.Normalized(vmath.Vec3{0, 0, 0}))
	n := vmath.Normalized(vmath.Vec3{3, 0, 4})
	assert.InDelta(t, 1.0, n.Len(), 1e-5)
}

func TestLerpUnclamped(t *testing.T) {
	assert.InDelta(t, 2.0, vmath.Lerp(0, 1, 2), 1e-6)
	assert.InDelta(t, -1.0, vmath.Lerp(0, 1, -1), 1e-6)
}

func TestTRSComposition(t *testing.T) {
	m := vmath.TRS(vmath.Vec3{1, 0, 0}, vmath.Vec3{0, 0, 0}, vmath.Vec3{2, 2, 2})
	v := vmath.TransformPoint(m, vmath.Vec3{1, 1, 1})
	assert.InDelta(t, 3.0, v[0], 1e-4) // scale then translate: 1*2+1
	assert.InDelta(t, 2.0, v[1], 1e-4)
	assert.InDelta(t, 2.0, v[2], 1e-4)
}

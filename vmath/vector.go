package vmath

import "github.com/go-gl/mathgl/mgl32"

// Vec2, Vec3, Vec4 are re-exported mgl32 aggregate types; the engine's
// vectors are plain value types with value-returning operations, exactly as
// spec §4.2 requires, so there is no reason to wrap them further.
type (
	Vec2 = mgl32.Vec2
	Vec3 = mgl32.Vec3
	Vec4 = mgl32.Vec4
)

// Normalized returns v scaled to unit length, or the zero vector if v has
// zero length. mgl32.Vec3.Normalize panics/NaNs on a zero vector instead, so
// this wraps it with the spec-required fallback.
func Normalized(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// Cross returns a × b.
func Cross(a, b Vec3) Vec3 {
	return a.Cross(b)
}

// Dot returns a · b.
func Dot(a, b Vec3) float32 {
	return a.Dot(b)
}

// LerpVec3 linearly interpolates each component independently, unclamped.
func LerpVec3(a, b Vec3, t float32) Vec3 {
	return Vec3{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t)}
}

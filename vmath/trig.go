// Package vmath implements the spec's math helpers (C2) on top of
// github.com/go-gl/mathgl's mgl32 vector/matrix types, which the teacher
// uses throughout for exactly this purpose. The handful of helpers below
// are the ones the reference engine defines with non-default semantics:
// degrees-in/degrees-out trig, unclamped lerp, and zero-fallback
// normalization.
package vmath

import "math"

// DegToRad converts degrees to radians at float32 precision, matching the
// storage precision used throughout the engine.
func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees at float32 precision.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math.Pi
}

// Atan2Deg returns atan2(y, x) in degrees, matching the reference trig
// helpers which always accept/return degrees at the API boundary.
func Atan2Deg(y, x float32) float32 {
	return RadToDeg(float32(math.Atan2(float64(y), float64(x))))
}

// Lerp linearly interpolates between a and b by t. t is not clamped to
// [0,1]; callers wanting clamping must do so themselves, per spec §4.2.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

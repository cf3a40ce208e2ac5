package vmath

import "github.com/go-gl/mathgl/mgl32"

// Mat4 is a 4x4 float32 matrix, re-exported from mgl32.
type Mat4 = mgl32.Mat4

// TRS composes translate · rotate-X · rotate-Y · rotate-Z · scale, in that
// order, matching the offset-baking composition spec §4.6 requires for
// model-load-time vertex transforms.
func TRS(translate Vec3, rotateDeg Vec3, scale Vec3) Mat4 {
	t := mgl32.Translate3D(translate[0], translate[1], translate[2])
	rx := mgl32.HomogRotate3DX(DegToRad(rotateDeg[0]))
	ry := mgl32.HomogRotate3DY(DegToRad(rotateDeg[1]))
	rz := mgl32.HomogRotate3DZ(DegToRad(rotateDeg[2]))
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}

// LookAt builds a view matrix looking from eye toward eye+forward with the
// given up vector, matching spec §4.7's camera view-matrix derivation.
func LookAt(eye, forward, up Vec3) Mat4 {
	target := eye.Add(forward)
	return mgl32.LookAtV(eye, target, up)
}

// Perspective builds a projection matrix from a vertical field of view in
// degrees.
func Perspective(fovDeg, aspect, near, far float32) Mat4 {
	return mgl32.Perspective(DegToRad(fovDeg), aspect, near, far)
}

// orthoHalfExtentK is the fixed constant the reference implementation uses
// to derive orthographic half-extents from a camera "size" field.
const orthoHalfExtentK = 1000

// Orthographic builds an orthographic projection from half-extents derived
// as windowX*size/K, windowY*size/K, per spec §4.7.
func Orthographic(windowW, windowH, size, near, far float32) Mat4 {
	hw := windowW * size / orthoHalfExtentK
	hh := windowH * size / orthoHalfExtentK
	return mgl32.Ortho(-hw, hw, -hh, hh, near, far)
}

// TransformPoint applies m to the homogeneous point (v, 1) and returns the
// resulting Vec3 (no perspective divide).
func TransformPoint(m Mat4, v Vec3) Vec3 {
	r := m.Mul4x1(Vec4{v[0], v[1], v[2], 1})
	return Vec3{r[0], r[1], r[2]}
}

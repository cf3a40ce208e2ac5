package renderer

import (
	"math"

	"github.com/omerfuyar/shuildgo/vmath"
)

// Camera borrows its position/rotation from caller-owned storage, per
// spec §3's reference-to-external-transform rule. Rotation is (rx, ry)
// in degrees; view/projection matrices are derived each Scene.update.
type Camera struct {
	Position *vmath.Vec3
	Rotation *vmath.Vec3

	IsPerspective bool
	Size          float32 // fov in degrees (perspective) or half-height (ortho)
	Near, Far     float32
	Aspect        float32 // updated by the scene from the window size

	view Vmath4
	proj Vmath4
}

// Vmath4 aliases vmath.Mat4 to keep this file's exported surface terse.
type Vmath4 = vmath.Mat4

// Forward computes the camera's facing direction from its rotation, per
// spec §4.7: forward = normalize(cos(rx)cos(ry), sin(rx), cos(rx)sin(ry)).
func (c *Camera) Forward() vmath.Vec3 {
	rx := float64(vmath.DegToRad((*c.Rotation)[0]))
	ry := float64(vmath.DegToRad((*c.Rotation)[1]))
	cosRx := float32(math.Cos(rx))
	return vmath.Normalized(vmath.Vec3{
		cosRx * float32(math.Cos(ry)),
		float32(math.Sin(rx)),
		cosRx * float32(math.Sin(ry)),
	})
}

// ViewProjection returns the camera's last-computed view and projection
// matrices, for callers (e.g. the debug renderer) that need them outside
// Scene.Render.
func (c *Camera) ViewProjection() (view, proj vmath.Mat4) {
	return c.view, c.proj
}

// recompute rebuilds the view and projection matrices from the current
// referenced position/rotation and window dimensions, per Scene.update.
func (c *Camera) recompute(windowW, windowH float32) {
	c.view = vmath.LookAt(*c.Position, c.Forward(), vmath.Vec3{0, 1, 0})
	if c.IsPerspective {
		c.proj = vmath.Perspective(c.Size, c.Aspect, c.Near, c.Far)
	} else {
		c.proj = vmath.Orthographic(windowW, windowH, c.Size, c.Near, c.Far)
	}
}

package renderer

import "github.com/omerfuyar/shuildgo/vmath"

// Component is a handle into its owning Batch's parallel component/
// matrix arrays, per spec §3.
type Component int

// componentData borrows its transform from the caller, per the
// reference-to-external-transform rule.
type componentData struct {
	active   bool
	position *vmath.Vec3
	rotation *vmath.Vec3
	scale    *vmath.Vec3
}

func (c componentData) modelMatrix() vmath.Mat4 {
	return vmath.TRS(*c.position, *c.rotation, *c.scale)
}

package renderer

import (
	"testing"

	"github.com/omerfuyar/shuildgo/vmath"
	"github.com/stretchr/testify/assert"
)

// FinishRendering itself needs a live GPU device (like the rest of this
// package's draw path), so these tests cover only the CPU-side
// accumulation contract; see spec §8 invariant 8 for the full
// draw-then-clear behavior exercised manually against a real backend.

func TestDrawLineAppendsTwoVertices(t *testing.T) {
	d := &DebugRenderer{}
	d.DrawLine(vmath.Vec3{0, 0, 0}, vmath.Vec3{1, 0, 0}, [4]float32{1, 0, 0, 1})
	assert.Equal(t, 2, d.Count())
}

func TestDrawBoxLinesAppendsTwelveEdges(t *testing.T) {
	d := &DebugRenderer{}
	d.DrawBoxLines(vmath.Vec3{0, 0, 0}, vmath.Vec3{2, 2, 2}, [4]float32{0, 1, 0, 1})
	assert.Equal(t, 24, d.Count(), "12 edges * 2 vertices each")
}

func TestDebugVertexPositionsReflectBoxExtents(t *testing.T) {
	d := &DebugRenderer{}
	d.DrawBoxLines(vmath.Vec3{0, 0, 0}, vmath.Vec3{4, 2, 2}, [4]float32{1, 1, 1, 1})
	for _, v := range d.vertices {
		assert.LessOrEqual(t, v.Position[0], float32(2.0))
		assert.GreaterOrEqual(t, v.Position[0], float32(-2.0))
	}
}

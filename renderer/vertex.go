package renderer

import "github.com/omerfuyar/shuildgo/model"

// Vertex mirrors model.Vertex but is the exact GPU-uploaded layout: three
// attributes at fixed binding points position@0 (3f) / normal@1 (3f) /
// uv@2 (2f), stride 32 bytes, per spec §6's vertex attribute layout. The
// `shuild:"layout"` struct tags drive reflection-based vertex buffer
// layout construction in gpu.go, the same technique gpu_operations.go
// uses to build wgpu.VertexBufferLayout from a Go struct.
type Vertex struct {
	Position [3]float32 `shuild:"layout" format:"Float32x3" location:"0"`
	Normal   [3]float32 `shuild:"layout" format:"Float32x3" location:"1"`
	UV       [2]float32 `shuild:"layout" format:"Float32x2" location:"2"`
}

// vertexPool converts a model's vertex pool into the packed GPU layout.
func vertexPool(m *model.Model) []Vertex {
	out := make([]Vertex, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = Vertex{
			Position: [3]float32{v.Position[0], v.Position[1], v.Position[2]},
			Normal:   [3]float32{v.Normal[0], v.Normal[1], v.Normal[2]},
			UV:       [2]float32{v.UV[0], v.UV[1]},
		}
	}
	return out
}

// DebugVertex is the debug line-list layout: position(12) | color(16) =
// 28 bytes, at bindings 0/1, per spec §6.
type DebugVertex struct {
	Position [3]float32 `shuild:"layout" format:"Float32x3" location:"0"`
	Color    [4]float32 `shuild:"layout" format:"Float32x4" location:"1"`
}

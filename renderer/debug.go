package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/omerfuyar/shuildgo/shuilderr"
	"github.com/omerfuyar/shuildgo/vmath"
)

// DebugRenderer accumulates line segments across a frame's DrawLine/
// DrawBoxLines calls and flushes them in a single LINES draw, per spec
// §6's immediate-mode debug renderer. It must run after the scene's main
// render pass so debug geometry overlays the shaded frame.
type DebugRenderer struct {
	device    *wgpu.Device
	queue     *wgpu.Queue
	pipeline  *wgpu.RenderPipeline
	vpBuf     *wgpu.Buffer
	bindGroup *wgpu.BindGroup

	vertices []DebugVertex
}

// NewDebugRenderer compiles the flat-color line pipeline, its single
// view-projection uniform buffer, and the group-0 bind group the shader's
// `viewProjection` binding (shaders.go) reads every FinishRendering call.
func NewDebugRenderer(device *wgpu.Device, queue *wgpu.Queue, surfaceFormat wgpu.TextureFormat) (*DebugRenderer, error) {
	pipeline, err := createPipeline(device, surfaceFormat, "debug line pipeline", debugShaderWGSL, DebugVertex{}, wgpu.PrimitiveTopologyLineList)
	if err != nil {
		return nil, err
	}
	vpBuf, err := createUniformBuffer(device, "debug view-projection", 64)
	if err != nil {
		return nil, err
	}

	layout := pipeline.GetBindGroupLayout(0)
	defer layout.Release()
	bindGroup, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: vpBuf, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return nil, shuilderr.New(shuilderr.GPURuntimeError, "renderer.NewDebugRenderer bind group", err)
	}

	return &DebugRenderer{device: device, queue: queue, pipeline: pipeline, vpBuf: vpBuf, bindGroup: bindGroup}, nil
}

// DrawLine queues one segment from a to b in color (rgba).
func (d *DebugRenderer) DrawLine(a, b vmath.Vec3, color [4]float32) {
	d.vertices = append(d.vertices,
		DebugVertex{Position: [3]float32{a[0], a[1], a[2]}, Color: color},
		DebugVertex{Position: [3]float32{b[0], b[1], b[2]}, Color: color},
	)
}

// DrawBoxLines queues the 12 edges of an axis-aligned box centered at
// center with the given full size, per spec §6.
func (d *DebugRenderer) DrawBoxLines(center, size vmath.Vec3, color [4]float32) {
	h := size.Mul(0.5)
	corners := [8]vmath.Vec3{
		{center[0] - h[0], center[1] - h[1], center[2] - h[2]},
		{center[0] + h[0], center[1] - h[1], center[2] - h[2]},
		{center[0] + h[0], center[1] + h[1], center[2] - h[2]},
		{center[0] - h[0], center[1] + h[1], center[2] - h[2]},
		{center[0] - h[0], center[1] - h[1], center[2] + h[2]},
		{center[0] + h[0], center[1] - h[1], center[2] + h[2]},
		{center[0] + h[0], center[1] + h[1], center[2] + h[2]},
		{center[0] - h[0], center[1] + h[1], center[2] + h[2]},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // near face
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // far face
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
	}
	for _, e := range edges {
		d.DrawLine(corners[e[0]], corners[e[1]], color)
	}
}

// FinishRendering uploads the accumulated vertex buffer, issues a single
// LINES draw against proj*view, and clears the buffer on every call,
// including calls that had nothing to draw.
func (d *DebugRenderer) FinishRendering(pass *wgpu.RenderPassEncoder, proj, view vmath.Mat4) error {
	defer func() { d.vertices = d.vertices[:0] }()

	if len(d.vertices) == 0 {
		return nil
	}

	vp := proj.Mul4(view)
	var vpArray [16]float32
	copy(vpArray[:], vp[:])
	if err := d.queue.WriteBuffer(d.vpBuf, 0, wgpu.ToBytes(vpArray[:])); err != nil {
		return shuilderr.New(shuilderr.GPURuntimeError, "renderer.DebugRenderer.FinishRendering vp upload", err)
	}

	vbuf, err := d.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "debug line vertex buffer",
		Contents: wgpu.ToBytes(d.vertices),
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return shuilderr.New(shuilderr.GPURuntimeError, "renderer.DebugRenderer.FinishRendering vertex upload", err)
	}

	pass.SetPipeline(d.pipeline)
	pass.SetBindGroup(0, d.bindGroup, nil)
	pass.SetVertexBuffer(0, vbuf, 0, wgpu.WholeSize)
	pass.Draw(uint32(len(d.vertices)), 1, 0, 0)

	return nil
}

// Count reports the number of queued debug vertices; used by tests to
// check what DrawLine/DrawBoxLines accumulated.
func (d *DebugRenderer) Count() int {
	return len(d.vertices)
}

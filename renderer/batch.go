package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/omerfuyar/shuildgo/container"
	"github.com/omerfuyar/shuildgo/model"
	"github.com/omerfuyar/shuildgo/shuilderr"
	"github.com/omerfuyar/shuildgo/vmath"
)

// Batch groups every Component instancing the same model: one model,
// many component transforms, one GPU vertex buffer plus one index buffer
// per mesh, shared across all its instances, per spec §3/§4.7.
type Batch struct {
	Model *model.Model

	components *container.Array[componentData]
	free       container.FreeList
	matrices   []vmath.Mat4 // len(matrices) == components.Count() (destroyed slots included), offset-in-batch indexed

	vertexBuffer *wgpu.Buffer
	indexBuffers []*wgpu.Buffer // one per mesh, built by Scene.CreateBatch

	instanceBuf *wgpu.Buffer // storage buffer backing modelMatrices[instance] in shaders.go
	instanceCap int          // instances instanceBuf currently holds room for
	bindGroup0  *wgpu.BindGroup

	offsetInScene int
}

const mat4ByteSize = 64

// ensureInstanceBuffer (re)allocates the instance-matrix storage buffer
// when the batch has grown past its current capacity, per spec §4.7's
// per-frame "upload instance UBO from batch's matrix list." Growing the
// buffer invalidates bindGroup0, which is rebuilt lazily against the new
// buffer by Scene.Render.
func (b *Batch) ensureInstanceBuffer(device *wgpu.Device) error {
	need := len(b.matrices)
	if need == 0 {
		need = 1
	}
	if b.instanceBuf != nil && need <= b.instanceCap {
		return nil
	}

	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            "batch instance matrices: " + b.Model.Name,
		Size:             uint64(need) * mat4ByteSize,
		Usage:            wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return shuilderr.New(shuilderr.GPURuntimeError, "renderer.Batch.ensureInstanceBuffer", err)
	}

	b.instanceBuf = buf
	b.instanceCap = need
	b.bindGroup0 = nil
	return nil
}

func newBatch(m *model.Model) *Batch {
	return &Batch{
		Model:      m,
		components: container.NewArray[componentData](8),
	}
}

// CreateComponent adds an instance referencing position/rotation/scale
// (owned by the caller) and returns its handle, recycling a freed slot.
func (b *Batch) CreateComponent(position, rotation, scale *vmath.Vec3) Component {
	data := componentData{active: true, position: position, rotation: rotation, scale: scale}
	idx := b.free.Create()
	if idx < b.components.Count() {
		b.components.Set(idx, data)
	} else {
		b.components.Add(data)
		b.matrices = append(b.matrices, vmath.Mat4{})
	}
	return Component(idx)
}

// DestroyComponent invalidates a component's handle and recycles its slot.
func (b *Batch) DestroyComponent(c Component) {
	if !b.validComponent(c) {
		return
	}
	comp := b.components.Get(int(c))
	comp.active = false
	b.free.Destroy(int(c))
}

func (b *Batch) validComponent(c Component) bool {
	if c < 0 || int(c) >= b.components.Count() {
		return false
	}
	return b.components.Get(int(c)).active
}

// updateMatrices composes every live component's model matrix into this
// batch's instance-matrix slot, per Scene.update step 3.
func (b *Batch) updateMatrices() {
	for i := 0; i < b.components.Count(); i++ {
		comp := b.components.Get(i)
		if !comp.active {
			continue
		}
		b.matrices[i] = comp.modelMatrix()
	}
}

// InstanceCount returns the number of instances this batch draws.
func (b *Batch) InstanceCount() int {
	return len(b.matrices)
}

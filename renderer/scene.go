// Package renderer implements the instanced-draw scene/batch/component
// engine (C9) and the immediate-mode debug line renderer (C10). Grounded
// on the teacher's gpu_operations.go for the wgpu pipeline/buffer idiom
// and on its mod_client.go render system for the render-pass/draw-call
// shape (one draw per mesh, material-keyed grouping), generalized from a
// single flat entity list to the spec's Scene→Batch→Component handle
// hierarchy described in original_source/include/app/Renderer.h's
// RendererBatch.
package renderer

import (
	"path/filepath"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/omerfuyar/shuildgo/container"
	"github.com/omerfuyar/shuildgo/material"
	"github.com/omerfuyar/shuildgo/model"
	"github.com/omerfuyar/shuildgo/resource"
	"github.com/omerfuyar/shuildgo/shuilderr"
	"github.com/omerfuyar/shuildgo/vmath"
)

// BatchHandle identifies a live Batch within a Scene.
type BatchHandle int

// cameraUniforms is the 4-field block spec §4.7 names: projection, view,
// position, rotation.
type cameraUniforms struct {
	Projection [16]float32
	View       [16]float32
	Position   [3]float32
	_pad0      float32
	Rotation   [3]float32
	_pad1      float32
}

// Scene owns one camera, a set of batches (each a model + instance
// list), and the GPU resources the render pass reuses every frame.
type Scene struct {
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceFormat wgpu.TextureFormat
	root          *resource.Root

	Camera *Camera

	batches   *container.Array[*Batch]
	free      container.FreeList
	textures  *texturePool
	pipeline  *wgpu.RenderPipeline
	cameraBuf *wgpu.Buffer
	sampler   *wgpu.Sampler

	defaultMaterial *material.Material
	whiteTexture    *Texture
	materialGroups  map[*material.Material]*wgpu.BindGroup
	materialBufs    map[*material.Material]*wgpu.Buffer

	windowW, windowH float32
}

// NewScene builds the scene's GPU pipeline, uniform buffer and shared
// sampler/default-material/default-texture against device/surfaceFormat
// (taken from an *appcontext.Context), per spec §4.7's "uniform locations
// resolved once at scene construction." root resolves the relative
// `map_Kd` texture names materials reference, the same "models/" base
// loadModel uses for the .obj/.mtl pair itself.
func NewScene(device *wgpu.Device, queue *wgpu.Queue, surfaceFormat wgpu.TextureFormat, root *resource.Root, windowW, windowH int) (*Scene, error) {
	pipeline, err := createPipeline(device, surfaceFormat, "scene pipeline", sceneShaderWGSL, Vertex{}, wgpu.PrimitiveTopologyTriangleList)
	if err != nil {
		return nil, err
	}
	cameraBuf, err := createUniformBuffer(device, "camera uniforms", 160)
	if err != nil {
		return nil, err
	}
	sampler, err := device.CreateSampler(&wgpu.SamplerDescriptor{
		AddressModeU: wgpu.AddressModeRepeat,
		AddressModeV: wgpu.AddressModeRepeat,
		AddressModeW: wgpu.AddressModeRepeat,
		MagFilter:    wgpu.FilterModeLinear,
		MinFilter:    wgpu.FilterModeLinear,
		MipmapFilter: wgpu.MipmapFilterModeLinear,
		LodMinClamp:  0,
		LodMaxClamp:  1,
	})
	if err != nil {
		return nil, shuilderr.New(shuilderr.GPURuntimeError, "renderer.NewScene sampler", err)
	}

	textures := newTexturePool(device, queue)
	whiteTexture, err := textures.CreateOrGet(defaultWhiteTextureName, defaultWhiteImage())
	if err != nil {
		return nil, shuilderr.New(shuilderr.GPURuntimeError, "renderer.NewScene default texture", err)
	}

	return &Scene{
		device:          device,
		queue:           queue,
		surfaceFormat:   surfaceFormat,
		root:            root,
		batches:         container.NewArray[*Batch](4),
		textures:        textures,
		pipeline:        pipeline,
		cameraBuf:       cameraBuf,
		sampler:         sampler,
		defaultMaterial: &material.Material{Dissolve: 1},
		whiteTexture:    whiteTexture,
		materialGroups:  make(map[*material.Material]*wgpu.BindGroup),
		materialBufs:    make(map[*material.Material]*wgpu.Buffer),
		windowW:         float32(windowW),
		windowH:         float32(windowH),
	}, nil
}

// Resize updates the window dimensions the camera's orthographic
// projection (and aspect ratio) derive from.
func (s *Scene) Resize(w, h int) {
	s.windowW, s.windowH = float32(w), float32(h)
	if s.Camera != nil && s.windowH != 0 {
		s.Camera.Aspect = s.windowW / s.windowH
	}
}

// CreateBatch registers a new batch for m, uploading its vertex pool
// once. Returns UnknownModel if m is nil.
func (s *Scene) CreateBatch(m *model.Model) (BatchHandle, error) {
	if m == nil {
		return -1, shuilderr.New(shuilderr.UnknownModel, "renderer.Scene.CreateBatch", nil)
	}
	b := newBatch(m)
	vbuf, err := s.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "batch vertex buffer: " + m.Name,
		Contents: wgpu.ToBytes(vertexPool(m)),
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return -1, shuilderr.New(shuilderr.GPURuntimeError, "renderer.Scene.CreateBatch", err)
	}
	b.vertexBuffer = vbuf

	for _, mesh := range m.Meshes {
		ibuf, err := s.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    "batch index buffer: " + mesh.Name,
			Contents: wgpu.ToBytes(mesh.Indices),
			Usage:    wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return -1, shuilderr.New(shuilderr.GPURuntimeError, "renderer.Scene.CreateBatch", err)
		}
		b.indexBuffers = append(b.indexBuffers, ibuf)
	}

	idx := s.free.Create()
	if idx < s.batches.Count() {
		*s.batches.Get(idx) = b
	} else {
		s.batches.Add(b)
	}
	b.offsetInScene = idx
	return BatchHandle(idx), nil
}

// DestroyBatch removes a batch and every component it held.
func (s *Scene) DestroyBatch(h BatchHandle) {
	if !s.validBatch(h) {
		return
	}
	*s.batches.Get(int(h)) = nil
	s.free.Destroy(int(h))
}

func (s *Scene) validBatch(h BatchHandle) bool {
	if h < 0 || int(h) >= s.batches.Count() {
		return false
	}
	return *s.batches.Get(int(h)) != nil
}

// CreateComponent adds an instance to batch h referencing
// position/rotation/scale owned by the caller.
func (s *Scene) CreateComponent(h BatchHandle, position, rotation, scale *vmath.Vec3) (Component, error) {
	if !s.validBatch(h) {
		return -1, shuilderr.New(shuilderr.UnknownModel, "renderer.Scene.CreateComponent", nil)
	}
	b := *s.batches.Get(int(h))
	return b.CreateComponent(position, rotation, scale), nil
}

// DestroyComponent removes an instance from batch h.
func (s *Scene) DestroyComponent(h BatchHandle, c Component) {
	if !s.validBatch(h) {
		return
	}
	(*s.batches.Get(int(h))).DestroyComponent(c)
}

// Update recomputes the camera matrices and every batch's per-component
// model matrices, per spec §4.7's Scene.update contract. With no camera
// bound, the camera step is skipped and only the batch matrices are
// rebuilt (NoCamera is returned by Render instead, matching "per-frame
// draw errors are logged, not update errors").
func (s *Scene) Update(dt float32) {
	if s.Camera != nil {
		s.Camera.recompute(s.windowW, s.windowH)
	}
	for i := 0; i < s.batches.Count(); i++ {
		b := *s.batches.Get(i)
		if b == nil {
			continue
		}
		b.updateMatrices()
	}
}

// materialUniforms is the MaterialUniforms block shaders.go declares at
// @group(1) @binding(0).
type materialUniforms struct {
	Ambient          [4]float32
	Diffuse          [4]float32
	Specular         [4]float32
	Emissive         [4]float32
	SpecularExponent float32
	Dissolve         float32
	HasDiffuseMap    float32
	_pad             float32
}

// Render uploads the camera uniforms, then for each batch uploads its
// instance matrix storage buffer, binds group 0 (camera + instance
// matrices) and, per mesh, group 1 (material scalars + diffuse texture,
// built once per distinct material and cached thereafter), issuing one
// instanced indexed draw per mesh, per spec §4.7's Scene.render contract.
func (s *Scene) Render(pass *wgpu.RenderPassEncoder) error {
	if s.Camera == nil {
		return shuilderr.New(shuilderr.NoCamera, "renderer.Scene.Render", nil)
	}

	cam := cameraUniforms{
		Projection: mat4Array(s.Camera.proj),
		View:       mat4Array(s.Camera.view),
		Position:   [3]float32{(*s.Camera.Position)[0], (*s.Camera.Position)[1], (*s.Camera.Position)[2]},
		Rotation:   [3]float32{(*s.Camera.Rotation)[0], (*s.Camera.Rotation)[1], (*s.Camera.Rotation)[2]},
	}
	if err := s.queue.WriteBuffer(s.cameraBuf, 0, wgpu.ToBytes([]cameraUniforms{cam})); err != nil {
		return shuilderr.New(shuilderr.GPURuntimeError, "renderer.Scene.Render camera upload", err)
	}

	pass.SetPipeline(s.pipeline)

	for i := 0; i < s.batches.Count(); i++ {
		b := *s.batches.Get(i)
		if b == nil || b.InstanceCount() == 0 {
			continue
		}

		if err := b.ensureInstanceBuffer(s.device); err != nil {
			return err
		}
		if err := s.queue.WriteBuffer(b.instanceBuf, 0, wgpu.ToBytes(b.matrices)); err != nil {
			return shuilderr.New(shuilderr.GPURuntimeError, "renderer.Scene.Render instance upload", err)
		}
		if b.bindGroup0 == nil {
			bg, err := s.createBatchBindGroup(b)
			if err != nil {
				return err
			}
			b.bindGroup0 = bg
		}
		pass.SetBindGroup(0, b.bindGroup0, nil)
		pass.SetVertexBuffer(0, b.vertexBuffer, 0, wgpu.WholeSize)

		for mi, mesh := range b.Model.Meshes {
			mat := mesh.Material
			if mat == nil {
				mat = s.defaultMaterial
			}
			matGroup, err := s.materialBindGroup(mat)
			if err != nil {
				return err
			}
			pass.SetBindGroup(1, matGroup, nil)

			pass.SetIndexBuffer(b.indexBuffers[mi], wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
			pass.DrawIndexed(uint32(len(mesh.Indices)), uint32(b.InstanceCount()), 0, 0, 0)
		}
	}

	return nil
}

// createBatchBindGroup binds b's instance-matrix storage buffer alongside
// the scene's camera uniform buffer into group 0.
func (s *Scene) createBatchBindGroup(b *Batch) (*wgpu.BindGroup, error) {
	layout := s.pipeline.GetBindGroupLayout(0)
	defer layout.Release()

	bg, err := s.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: s.cameraBuf, Size: wgpu.WholeSize},
			{Binding: 1, Buffer: b.instanceBuf, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return nil, shuilderr.New(shuilderr.GPURuntimeError, "renderer.Scene.createBatchBindGroup", err)
	}
	return bg, nil
}

// materialBindGroup returns mat's group-1 bind group, building and
// uploading its uniform buffer (and de-duplicating/uploading its diffuse
// texture through the texture pool, per spec §4.6) the first time mat is
// seen, per invariant 10/scenario S6.
func (s *Scene) materialBindGroup(mat *material.Material) (*wgpu.BindGroup, error) {
	if bg, ok := s.materialGroups[mat]; ok {
		return bg, nil
	}

	tex := s.whiteTexture
	hasMap := float32(0)
	if mat.DiffuseMap != "" {
		img, err := resource.LoadImage(s.root, filepath.Join("models", mat.DiffuseMap))
		if err != nil {
			return nil, err
		}
		t, err := s.textures.CreateOrGet(mat.DiffuseMap, img)
		if err != nil {
			return nil, shuilderr.New(shuilderr.GPURuntimeError, "renderer.Scene.materialBindGroup texture", err)
		}
		tex = t
		hasMap = 1
	}

	uniforms := materialUniforms{
		Ambient:          vec4From3(mat.Ambient, 1),
		Diffuse:          vec4From3(mat.Diffuse, 1),
		Specular:         vec4From3(mat.Specular, 1),
		Emissive:         vec4From3(mat.Emissive, 1),
		SpecularExponent: mat.SpecularExponent,
		Dissolve:         mat.Dissolve,
		HasDiffuseMap:    hasMap,
	}
	buf, err := createUniformBuffer(s.device, "material uniforms: "+mat.Name, 80)
	if err != nil {
		return nil, err
	}
	if err := s.queue.WriteBuffer(buf, 0, wgpu.ToBytes([]materialUniforms{uniforms})); err != nil {
		return nil, shuilderr.New(shuilderr.GPURuntimeError, "renderer.Scene.materialBindGroup upload", err)
	}

	layout := s.pipeline.GetBindGroupLayout(1)
	defer layout.Release()

	bg, err := s.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: buf, Size: wgpu.WholeSize},
			{Binding: 1, Sampler: s.sampler, Size: wgpu.WholeSize},
			{Binding: 2, TextureView: tex.view, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return nil, shuilderr.New(shuilderr.GPURuntimeError, "renderer.Scene.materialBindGroup", err)
	}

	s.materialBufs[mat] = buf
	s.materialGroups[mat] = bg
	return bg, nil
}

func vec4From3(v vmath.Vec3, w float32) [4]float32 {
	return [4]float32{v[0], v[1], v[2], w}
}

func mat4Array(m vmath.Mat4) [16]float32 {
	var out [16]float32
	copy(out[:], m[:])
	return out
}

// ScreenToWorld projects a screen-space pixel at the given clip-space
// depth back into world space: build clip-space (ndc_x, ndc_y, depth, 1),
// then inverse-transform through projection and view, per spec §4.7.
func (s *Scene) ScreenToWorld(screenX, screenY, depth float32) vmath.Vec3 {
	ndcX := (2*screenX)/s.windowW - 1
	ndcY := 1 - (2*screenY)/s.windowH

	clip := vmath.Vec4{ndcX, ndcY, depth, 1}
	invProj := s.Camera.proj.Inv()
	invView := s.Camera.view.Inv()

	view := invProj.Mul4x1(clip)
	if view[3] != 0 {
		view = view.Mul(1 / view[3])
	}
	world := invView.Mul4x1(view)
	return vmath.Vec3{world[0], world[1], world[2]}
}

// GPU setup helpers: shader/pipeline/buffer creation, adapted from the
// teacher's gpu_operations.go (createRenderPipeline/createVertexBufferLayout/
// createBuffer), generalized from the teacher's single hard-coded vertex
// type to any struct tagged with `shuild:"layout"` fields, and reused for
// both the main scene pipeline and the debug line pipeline.
package renderer

import (
	"reflect"
	"strconv"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/omerfuyar/shuildgo/shuilderr"
)

// vertexBufferLayout builds a wgpu.VertexBufferLayout by reflecting over
// vertexType's `shuild:"layout"` tagged fields in declaration order.
func vertexBufferLayout(vertexType any) wgpu.VertexBufferLayout {
	t := reflect.TypeOf(vertexType)
	var attrs []wgpu.VertexAttribute
	var offset uint64

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Tag.Get("shuild") == "layout" {
			format := parseVertexFormat(field.Tag.Get("format"))
			location, _ := strconv.Atoi(field.Tag.Get("location"))
			attrs = append(attrs, wgpu.VertexAttribute{
				ShaderLocation: uint32(location),
				Offset:         offset,
				Format:         format,
			})
		}
		offset += uint64(field.Type.Size())
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

func parseVertexFormat(name string) wgpu.VertexFormat {
	switch name {
	case "Float32x2":
		return wgpu.VertexFormatFloat32x2
	case "Float32x3":
		return wgpu.VertexFormatFloat32x3
	case "Float32x4":
		return wgpu.VertexFormatFloat32x4
	default:
		return wgpu.VertexFormatFloat32x3
	}
}

// createPipeline compiles a WGSL module and builds a render pipeline for
// one vertex layout against the device's surface format.
func createPipeline(device *wgpu.Device, surfaceFormat wgpu.TextureFormat, label, wgsl string, vertexType any, topology wgpu.PrimitiveTopology) (*wgpu.RenderPipeline, error) {
	shader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: wgsl},
	})
	if err != nil {
		return nil, shuilderr.New(shuilderr.ShaderCompile, "renderer.createPipeline", err)
	}
	defer shader.Release()

	layout := vertexBufferLayout(vertexType)

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: label,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{layout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{Format: surfaceFormat, WriteMask: wgpu.ColorWriteMaskAll},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
	})
	if err != nil {
		return nil, shuilderr.New(shuilderr.ShaderLink, "renderer.createPipeline", err)
	}
	return pipeline, nil
}

func createUniformBuffer(device *wgpu.Device, label string, sizeBytes uint64) (*wgpu.Buffer, error) {
	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            label,
		Size:             sizeBytes,
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return nil, shuilderr.New(shuilderr.GPURuntimeError, "renderer.createUniformBuffer", err)
	}
	return buf, nil
}

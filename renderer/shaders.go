package renderer

// sceneShaderWGSL implements the vertex/fragment contract spec §6
// describes: the three vertex attributes plus an instance-indexed model
// matrix from the storage buffer at @group(0) @binding(1), the camera
// uniforms at @group(0) @binding(0), and the material uniforms the
// fragment stage reads, sampling matDiffuseMap when matHasDiffuseMap != 0.
const sceneShaderWGSL = `
struct CameraUniforms {
	projection: mat4x4<f32>,
	view: mat4x4<f32>,
	position: vec3<f32>,
	rotation: vec3<f32>,
};

struct MaterialUniforms {
	ambient: vec4<f32>,
	diffuse: vec4<f32>,
	specular: vec4<f32>,
	emissive: vec4<f32>,
	specularExponent: f32,
	dissolve: f32,
	hasDiffuseMap: f32,
	_pad: f32,
};

@group(0) @binding(0) var<uniform> camera: CameraUniforms;
@group(0) @binding(1) var<storage, read> modelMatrices: array<mat4x4<f32>>;
@group(1) @binding(0) var<uniform> material: MaterialUniforms;
@group(1) @binding(1) var diffuseSampler: sampler;
@group(1) @binding(2) var diffuseTexture: texture_2d<f32>;

struct VertexOut {
	@builtin(position) clipPosition: vec4<f32>,
	@location(0) normal: vec3<f32>,
	@location(1) uv: vec2<f32>,
};

@vertex
fn vs_main(
	@builtin(instance_index) instance: u32,
	@location(0) position: vec3<f32>,
	@location(1) normal: vec3<f32>,
	@location(2) uv: vec2<f32>,
) -> VertexOut {
	let model = modelMatrices[instance];
	var out: VertexOut;
	out.clipPosition = camera.projection * camera.view * model * vec4<f32>(position, 1.0);
	out.normal = normal;
	out.uv = uv;
	return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
	var color = material.diffuse;
	if (material.hasDiffuseMap != 0.0) {
		color = textureSample(diffuseTexture, diffuseSampler, in.uv);
	}
	return vec4<f32>(color.rgb * material.diffuse.a, material.dissolve);
}
`

// debugShaderWGSL draws flat-colored line segments; no camera uniform
// indirection beyond a single view-projection matrix, matching
// finish_rendering's one-shot LINES draw (spec §4.7).
const debugShaderWGSL = `
@group(0) @binding(0) var<uniform> viewProjection: mat4x4<f32>;

struct VertexOut {
	@builtin(position) clipPosition: vec4<f32>,
	@location(0) color: vec4<f32>,
};

@vertex
fn vs_main(@location(0) position: vec3<f32>, @location(1) color: vec4<f32>) -> VertexOut {
	var out: VertexOut;
	out.clipPosition = viewProjection * vec4<f32>(position, 1.0);
	out.color = color;
	return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
	return in.color;
}
`

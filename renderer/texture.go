package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/omerfuyar/shuildgo/resource"
)

// defaultWhiteTextureName keys the 1x1 opaque-white fallback texture
// bound for materials without a `map_Kd`, so the shader's diffuseTexture
// binding is always populated even when hasDiffuseMap is 0.
const defaultWhiteTextureName = "__default_white__"

func defaultWhiteImage() *resource.Image {
	return &resource.Image{Pixels: []byte{255, 255, 255, 255}, Width: 1, Height: 1, Channels: 4}
}

// Texture is a GPU-resident, de-duplicated image, per spec §3/§4.6.
type Texture struct {
	Name     string
	Width    int
	Height   int
	Channels int
	view     *wgpu.TextureView
}

// texturePool de-duplicates textures by name across a scene's lifetime:
// CreateOrGet scans for a name match before uploading, matching
// Texture.create_or_get in spec §4.6.
type texturePool struct {
	device  *wgpu.Device
	queue   *wgpu.Queue
	byName  map[string]*Texture
}

func newTexturePool(device *wgpu.Device, queue *wgpu.Queue) *texturePool {
	return &texturePool{device: device, queue: queue, byName: make(map[string]*Texture)}
}

// CreateOrGet returns the existing texture if name was already uploaded,
// otherwise uploads the already-decoded img as a new one.
func (p *texturePool) CreateOrGet(name string, img *resource.Image) (*Texture, error) {
	if t, ok := p.byName[name]; ok {
		return t, nil
	}

	size := wgpu.Extent3D{Width: uint32(img.Width), Height: uint32(img.Height), DepthOrArrayLayers: 1}
	tex, err := p.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         name,
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	defer tex.Release()

	view, err := tex.CreateView(nil)
	if err != nil {
		return nil, err
	}

	err = p.queue.WriteTexture(
		tex.AsImageCopy(),
		img.Pixels,
		&wgpu.TextureDataLayout{Offset: 0, BytesPerRow: uint32(img.Width * 4), RowsPerImage: uint32(img.Height)},
		&size,
	)
	if err != nil {
		return nil, err
	}

	t := &Texture{Name: name, Width: img.Width, Height: img.Height, Channels: img.Channels, view: view}
	p.byName[name] = t
	return t, nil
}

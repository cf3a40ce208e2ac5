package resource

import (
	"bytes"
	stdimage "image"
	"io"
	"path/filepath"
	"strings"

	"github.com/omerfuyar/shuildgo/shuilderr"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "image/jpeg"
	_ "image/png"
)

// Image holds decoded RGBA8 pixels, vertically flipped so row 0 is the
// bottom of the image, matching GPU texture origin-at-bottom-left
// conventions per spec §4.3.
type Image struct {
	Pixels   []byte
	Width    int
	Height   int
	Channels int
}

// LoadImage decodes relative under root using whichever format its
// signature matches (png/jpeg/bmp/tiff, via the standard library and
// golang.org/x/image's decoders registered above), and flips it vertically.
func LoadImage(root *Root, relative string) (*Image, error) {
	f, err := root.Open(relative)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, shuilderr.New(shuilderr.FileOpen, "resource.LoadImage", err)
	}

	img, _, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, shuilderr.New(shuilderr.ParseUnexpectedToken, "resource.LoadImage decode "+fileKind(relative), err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgba := stdimage.NewRGBA(stdimage.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	flipped := make([]byte, len(rgba.Pix))
	stride := rgba.Stride
	for row := 0; row < h; row++ {
		src := rgba.Pix[row*stride : row*stride+w*4]
		dstRow := h - 1 - row
		copy(flipped[dstRow*w*4:dstRow*w*4+w*4], src)
	}

	return &Image{Pixels: flipped, Width: w, Height: h, Channels: 4}, nil
}

func fileKind(relative string) string {
	return strings.TrimPrefix(filepath.Ext(relative), ".")
}

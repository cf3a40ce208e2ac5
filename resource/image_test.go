package resource_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/omerfuyar/shuildgo/resource"
	"github.com/stretchr/testify/require"
)

func TestLoadImageFlipsVertically(t *testing.T) {
	dir := t.TempDir()

	// Two-pixel-tall image: top row red, bottom row blue.
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})

	f, err := os.Create(filepath.Join(dir, "tex.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	root := resource.NewRootAt(dir)
	decoded, err := resource.LoadImage(root, "tex.png")
	require.NoError(t, err)
	require.Equal(t, 1, decoded.Width)
	require.Equal(t, 2, decoded.Height)
	require.Equal(t, 4, decoded.Channels)

	// After the vertical flip, original row 0 (red, image top) ends up at
	// output row 1 (GPU top), and the original bottom row (blue) ends up
	// at output row 0 (GPU bottom).
	row0 := decoded.Pixels[0:4]
	row1 := decoded.Pixels[4:8]
	require.Equal(t, []byte{0, 0, 255, 255}, row0)
	require.Equal(t, []byte{255, 0, 0, 255}, row1)
}

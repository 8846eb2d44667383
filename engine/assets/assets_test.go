package assets

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShaderTerminates(t *testing.T) {
	fsys := fstest.MapFS{"a.vert": {Data: []byte("void main() {}")}}
	src, err := LoadShader(fsys, "a.vert")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}\x00", src)

	_, err = LoadShader(fsys, "missing.frag")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScreenshotKeepsPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(2, 1, color.RGBA{R: 200, G: 10, B: 20, A: 255})

	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, SavePNG(path, img))
	got, err := LoadPNG(path)
	require.NoError(t, err)

	assert.Equal(t, img.Rect, got.Rect)
	assert.Equal(t, color.RGBA{R: 200, G: 10, B: 20, A: 255}, got.RGBAAt(2, 1))
	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPNGRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o644))
	_, err := LoadPNG(path)
	assert.ErrorContains(t, err, "decode png")
}

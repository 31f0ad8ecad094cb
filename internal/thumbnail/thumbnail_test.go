package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	if filepath.Ext(path) == ".png" {
		require.NoError(t, png.Encode(f, img))
	} else {
		require.NoError(t, jpeg.Encode(f, img, nil))
	}
}

func TestGeneratePNGKeepsAspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.png")
	writeImage(t, path, 400, 200)

	data, mimeType, err := Generate(path, 100)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestGenerateJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	writeImage(t, path, 64, 64)

	data, mimeType, err := Generate(path, 32)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestGenerateRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, _, err := Generate(path, 32)
	assert.Error(t, err)
}

// Package thumbnail produces small previews of catalog images.
package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// Generate decodes the image at path, shrinks it to fit a size x size box and
// re-encodes it in the source format. It returns the encoded bytes and their mime type.
func Generate(path string, size uint) ([]byte, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	if format != "jpeg" && format != "png" {
		return nil, "", fmt.Errorf("unsupported format for file: %s", path)
	}

	m := resize.Thumbnail(size, size, img, resize.Lanczos3)

	var out bytes.Buffer
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".jpg" || ext == ".jpeg" {
		err = jpeg.Encode(&out, m, nil)
		return out.Bytes(), "image/jpeg", err
	}
	err = png.Encode(&out, m)
	return out.Bytes(), "image/png", err
}

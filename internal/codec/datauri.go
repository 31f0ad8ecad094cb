// Package codec converts file contents to and from base64 data URIs.
package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const marker = "base64,"

// ErrMalformedInput is returned when a payload has no base64 marker or the
// encoded part does not decode.
var ErrMalformedInput = errors.New("malformed data uri")

var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// MimeTypeFor infers an image mime type from the file extension.
func MimeTypeFor(path string) string {
	if t, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	return "application/octet-stream"
}

// EncodeDataURI wraps raw bytes as data:<mimeType>;base64,<payload>.
func EncodeDataURI(data []byte, mimeType string) string {
	return "data:" + mimeType + ";" + marker + base64.StdEncoding.EncodeToString(data)
}

// EncodeFileAsDataURI reads the whole file and returns it as a data URI.
func EncodeFileAsDataURI(path, mimeType string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return EncodeDataURI(data, mimeType), nil
}

// DecodeDataURI returns the bytes following the first "base64," marker.
func DecodeDataURI(s string) ([]byte, error) {
	i := strings.Index(s, marker)
	if i < 0 {
		return nil, fmt.Errorf("%w: missing %q marker", ErrMalformedInput, marker)
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s[i+len(marker):]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return data, nil
}

package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	original := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff, 0x10, 0x7f}
	require.NoError(t, os.WriteFile(path, original, 0o644))

	uri, err := EncodeFileAsDataURI(path, "image/png")
	require.NoError(t, err)
	assert.Contains(t, uri, "data:image/png;base64,")

	decoded, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestEncodeFileMissing(t *testing.T) {
	_, err := EncodeFileAsDataURI(filepath.Join(t.TempDir(), "nope.png"), "image/png")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeDataURIMalformed(t *testing.T) {
	_, err := DecodeDataURI("data:image/png,iVBORw0KGgo=")
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = DecodeDataURI("data:image/png;base64,not base64!!")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestDecodeDataURIWithoutPrefix(t *testing.T) {
	data, err := DecodeDataURI("base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestMimeTypeFor(t *testing.T) {
	assert.Equal(t, "image/jpeg", MimeTypeFor("/a/b.jpg"))
	assert.Equal(t, "image/jpeg", MimeTypeFor("b.jpeg"))
	assert.Equal(t, "image/png", MimeTypeFor("b.png"))
	assert.Equal(t, "application/octet-stream", MimeTypeFor("b.gif"))
}

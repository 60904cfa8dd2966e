package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smallest valid PNG header bytes; enough to exercise the decoder.
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func pngDataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}

func TestDecodeBase64Image(t *testing.T) {
	t.Run("decodes a png data uri", func(t *testing.T) {
		data, ext, err := DecodeBase64Image(pngDataURI())

		require.NoError(t, err)
		assert.Equal(t, pngBytes, data)
		assert.Equal(t, ".png", ext)
	})

	t.Run("rejects a missing data prefix", func(t *testing.T) {
		_, _, err := DecodeBase64Image(base64.StdEncoding.EncodeToString(pngBytes))
		assert.Error(t, err)
	})

	t.Run("rejects a header without a content type terminator", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png," + base64.StdEncoding.EncodeToString(pngBytes))
		assert.Error(t, err)
	})

	t.Run("rejects invalid base64 payloads", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png;base64,%%%not-base64%%%")
		assert.Error(t, err)
	})

	t.Run("rejects unknown content types", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:application/x-unknown-blob;base64," + base64.StdEncoding.EncodeToString(pngBytes))
		assert.Error(t, err)
	})
}

func TestValidateImageFormat(t *testing.T) {
	allowed := ".jpg,.jpeg,.png"

	t.Run("accepts an allowed extension", func(t *testing.T) {
		assert.NoError(t, ValidateImageFormat(".png", allowed))
		assert.NoError(t, ValidateImageFormat(".jpg", allowed))
	})

	t.Run("rejects anything else", func(t *testing.T) {
		assert.Error(t, ValidateImageFormat(".gif", allowed))
		assert.Error(t, ValidateImageFormat("png", allowed))
	})
}

func TestValidateImageSize(t *testing.T) {
	t.Run("accepts data under the cap", func(t *testing.T) {
		assert.NoError(t, ValidateImageSize(make([]byte, 1024), 1))
	})

	t.Run("accepts data exactly at the cap", func(t *testing.T) {
		assert.NoError(t, ValidateImageSize(make([]byte, 1024*1024), 1))
	})

	t.Run("rejects data over the cap", func(t *testing.T) {
		assert.Error(t, ValidateImageSize(make([]byte, 1024*1024+1), 1))
	})
}

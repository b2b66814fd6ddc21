package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	t.Run("Decodes PNG Data URL", func(t *testing.T) {
		payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))

		data, ext, err := DecodeBase64Image("data:image/png;base64," + payload)

		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
		assert.Equal(t, ".png", ext)
	})

	t.Run("Rejects Missing Header", func(t *testing.T) {
		_, _, err := DecodeBase64Image("just-some-text")

		assert.Error(t, err)
	})

	t.Run("Rejects Bad Payload", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png;base64,!!!not-base64!!!")

		assert.Error(t, err)
	})
}

func TestValidateImageFormat(t *testing.T) {
	allowed := []string{".jpg", ".jpeg", ".png"}

	assert.NoError(t, ValidateImageFormat(".png", allowed))
	assert.Error(t, ValidateImageFormat(".gif", allowed))
}

func TestValidateImageSize(t *testing.T) {
	t.Run("Within Limit", func(t *testing.T) {
		assert.NoError(t, ValidateImageSize(make([]byte, 1024), 1))
	})

	t.Run("Over Limit", func(t *testing.T) {
		assert.Error(t, ValidateImageSize(make([]byte, 2*1024*1024+1), 2))
	})
}

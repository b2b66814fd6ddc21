package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"
)

// DecodeBase64Image splits a "data:<type>;base64,<payload>" URL into the raw
// bytes and the file extension implied by the content type.
func DecodeBase64Image(encodedImage string) ([]byte, string, error) {
	parts := strings.SplitN(encodedImage, ",", 2)
	if len(parts) != 2 {
		return nil, "", errors.New("invalid base64 image")
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", err
	}

	semicolon := strings.Index(parts[0], ";")
	if !strings.HasPrefix(parts[0], "data:") || semicolon < 5 {
		return nil, "", errors.New("invalid base64 image header")
	}
	contentType := parts[0][5:semicolon]
	ext, err := mime.ExtensionsByType(contentType)
	if err != nil || len(ext) == 0 {
		return nil, "", errors.New("invalid image type")
	}

	return data, ext[0], nil
}

func ValidateImageFormat(ext string, allowedFormats []string) error {
	for _, format := range allowedFormats {
		if ext == format {
			return nil
		}
	}
	return fmt.Errorf("invalid image format. Allowed formats are: %s", strings.Join(allowedFormats, ", "))
}

func ValidateImageSize(data []byte, maxSizeInMegabytes int64) error {
	if int64(len(data)) > maxSizeInMegabytes*1024*1024 {
		return fmt.Errorf("image exceeds maximum allowed size of %dMB", maxSizeInMegabytes)
	}
	return nil
}

package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"
)

// DecodeBase64Image splits a base64 data-URI into raw bytes and the file
// extension derived from its content type.
func DecodeBase64Image(encodedImage string) ([]byte, string, error) {
	parts := strings.SplitN(encodedImage, ",", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:") {
		return nil, "", errors.New("invalid base64 image")
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", err
	}

	semicolon := strings.Index(parts[0], ";")
	if semicolon < 0 {
		return nil, "", errors.New("invalid base64 image header")
	}
	contentType := parts[0][5:semicolon]
	ext, err := mime.ExtensionsByType(contentType)
	if err != nil || len(ext) == 0 {
		return nil, "", errors.New("invalid image type")
	}

	return data, ext[0], nil
}

func ValidateImageFormat(ext string, allowedFormats string) error {
	for _, format := range strings.Split(allowedFormats, ",") {
		if ext == format {
			return nil
		}
	}
	return fmt.Errorf("invalid image format. Allowed formats are: %s", allowedFormats)
}

func ValidateImageSize(data []byte, maxSizeInMB int64) error {
	if int64(len(data)) > maxSizeInMB*1024*1024 {
		return fmt.Errorf("image exceeds maximum allowed size of %dMB", maxSizeInMB)
	}
	return nil
}

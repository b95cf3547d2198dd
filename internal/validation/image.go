package validation

import (
	"strings"

	"storefront_service/internal/domain"
)

const maxUploadSize = 1024 * 1024 // 1 MiB

// ValidateImage checks the declared size and media type of an uploaded
// file. A nil image passes: required-ness is enforced by the caller, the
// shape check only applies when a file is present.
func ValidateImage(image *domain.UploadedImage) error {
	if image == nil {
		return nil
	}

	var messages []string
	if image.Size > maxUploadSize {
		messages = append(messages, "File size must be less than 1MB")
	}
	if !strings.HasPrefix(image.ContentType, "image/") {
		messages = append(messages, "File must be an image")
	}

	if len(messages) > 0 {
		return &domain.ValidationError{Messages: messages}
	}
	return nil
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront_service/internal/domain"
)

func TestValidateImage(t *testing.T) {
	t.Run("absent file passes", func(t *testing.T) {
		assert.NoError(t, ValidateImage(nil))
	})

	t.Run("image at the size limit passes", func(t *testing.T) {
		image := &domain.UploadedImage{
			Filename:    "photo.jpg",
			ContentType: "image/jpeg",
			Size:        1024 * 1024,
		}
		assert.NoError(t, ValidateImage(image))
	})

	t.Run("oversized file fails", func(t *testing.T) {
		image := &domain.UploadedImage{
			Filename:    "photo.jpg",
			ContentType: "image/jpeg",
			Size:        1024*1024 + 1,
		}
		err := ValidateImage(image)
		require.Error(t, err)
		assert.Equal(t, "File size must be less than 1MB", err.Error())
	})

	t.Run("non-image type fails", func(t *testing.T) {
		image := &domain.UploadedImage{
			Filename:    "notes.pdf",
			ContentType: "application/pdf",
			Size:        512,
		}
		err := ValidateImage(image)
		require.Error(t, err)
		assert.Equal(t, "File must be an image", err.Error())
	})

	t.Run("oversized non-image aggregates both messages", func(t *testing.T) {
		image := &domain.UploadedImage{
			Filename:    "movie.mp4",
			ContentType: "video/mp4",
			Size:        5 * 1024 * 1024,
		}
		err := ValidateImage(image)
		require.Error(t, err)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"File size must be less than 1MB", "File must be an image"}, validationErr.Messages)
	})
}

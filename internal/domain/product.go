package domain

import (
	"context"
	"time"
)

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Price       int       `json:"price"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Featured    bool      `json:"featured"`
	ClerkID     string    `json:"clerk_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProductInput carries the validated form fields of a create request.
// The image URL and owning identity are attached by the pipeline.
type NewProductInput struct {
	Name        string
	Company     string
	Price       int
	Description string
	Featured    bool
}

// UploadedImage is the ephemeral binary submitted with a create request.
// It only lives until the upload call returns a public URL.
type UploadedImage struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) (*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	ListAll(ctx context.Context, search string) ([]Product, error)
	ListFeatured(ctx context.Context) ([]Product, error)
	ListByOwner(ctx context.Context, clerkID string) ([]Product, error)
}

// ImageUploader sends a binary to object storage and resolves its public
// URL. Remove deletes a previously uploaded object by that URL.
type ImageUploader interface {
	Upload(ctx context.Context, image *UploadedImage) (string, error)
	Remove(ctx context.Context, url string) error
}

// IdentityResolver maps a bearer token from the external identity
// provider to the caller's user id.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

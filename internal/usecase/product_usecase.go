package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"storefront_service/internal/domain"
	"storefront_service/internal/validation"
)

type ProductUseCase interface {
	CreateProduct(ctx context.Context, userID string, form validation.RawProductForm, image *domain.UploadedImage) (*domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, search string) ([]domain.Product, error)
	ListFeaturedProducts(ctx context.Context) ([]domain.Product, error)
	ListOwnProducts(ctx context.Context, userID string) ([]domain.Product, error)
}

type productUseCase struct {
	productRepo domain.ProductRepository
	uploader    domain.ImageUploader
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, uploader domain.ImageUploader, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		uploader:    uploader,
		log:         logger,
	}
}

// CreateProduct runs the linear create pipeline: validate fields, validate
// image, upload, persist. The first failing step short-circuits the rest.
// If persistence fails after a successful upload the stored object is left
// behind; there is no compensation step, matching the original behavior.
func (uc *productUseCase) CreateProduct(ctx context.Context, userID string, form validation.RawProductForm, image *domain.UploadedImage) (*domain.Product, error) {
	if userID == "" {
		uc.log.Warn("Use Case: Create product attempted without a resolved identity")
		return nil, domain.ErrUnauthenticated
	}

	input, err := validation.ValidateProduct(form)
	if err != nil {
		uc.log.Warnf("Use Case: Product field validation failed: %v", err)
		return nil, err
	}

	if image == nil {
		uc.log.Warn("Use Case: Create product attempted without an image file")
		return nil, &domain.ValidationError{Messages: []string{"File must be an image"}}
	}
	if err := validation.ValidateImage(image); err != nil {
		uc.log.Warnf("Use Case: Image validation failed: %v", err)
		return nil, err
	}

	imageURL, err := uc.uploader.Upload(ctx, image)
	if err != nil {
		uc.log.Errorf("Use Case: Image upload failed for product '%s': %v", input.Name, err)
		return nil, err
	}

	product := &domain.Product{
		Name:        input.Name,
		Company:     input.Company,
		Price:       input.Price,
		Description: input.Description,
		Image:       imageURL,
		Featured:    input.Featured,
		ClerkID:     userID,
	}

	created, err := uc.productRepo.Create(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s' (uploaded object %s is now orphaned): %v",
			input.Name, imageURL, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %s", created.Name, created.ID)
	return created, nil
}

func (uc *productUseCase) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, domain.ErrProductNotFound
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to get product ID %s: %v", id, err)
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, search string) ([]domain.Product, error) {
	products, err := uc.productRepo.ListAll(ctx, search)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, err
	}
	return products, nil
}

func (uc *productUseCase) ListFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := uc.productRepo.ListFeatured(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list featured products: %v", err)
		return nil, err
	}
	return products, nil
}

func (uc *productUseCase) ListOwnProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	products, err := uc.productRepo.ListByOwner(ctx, userID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for owner %s: %v", userID, err)
		return nil, err
	}
	return products, nil
}

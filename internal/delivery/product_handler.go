package delivery

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront_service/internal/domain"
	"storefront_service/internal/usecase"
	"storefront_service/internal/validation"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter, authRequired gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/featured", h.ListFeaturedProducts)
		products.GET("/:id", h.GetProductByID)
	}

	admin := router.Group("/admin/products", authRequired)
	{
		admin.GET("", h.ListAdminProducts)
		admin.POST("", h.CreateProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	search := c.Query("search")

	products, err := h.useCase.ListProducts(c.Request.Context(), search)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve products: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) ListFeaturedProducts(c *gin.Context) {
	products, err := h.useCase.ListFeaturedProducts(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list featured products: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve featured products: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Featured products retrieved successfully", products)
}

// GetProductByID resolves a missing product as a redirect to the listing
// page rather than a not-found error body.
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := h.useCase.GetProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			h.log.Warnf("Product %s not found, redirecting to listing", id)
			c.Redirect(http.StatusSeeOther, "/products")
			return
		}
		h.log.Errorf("Failed to get product by ID %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) ListAdminProducts(c *gin.Context) {
	userID := CurrentUserID(c)

	products, err := h.useCase.ListOwnProducts(c.Request.Context(), userID)
	if err != nil {
		h.log.Errorf("Failed to list products for user %s: %v", userID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve products: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

// CreateProduct accepts the multipart create form. On success the caller
// is redirected to the admin listing; every pipeline failure is reduced to
// a single {"message": ...} form result instead of an error status.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	form := validation.RawProductForm{
		Name:        c.PostForm("name"),
		Company:     c.PostForm("company"),
		Price:       c.PostForm("price"),
		Description: c.PostForm("description"),
		Featured:    c.PostForm("featured"),
	}

	image, err := formImage(c)
	if err != nil {
		h.log.Errorf("Failed to read uploaded image: %v", err)
		c.JSON(http.StatusOK, gin.H{"message": "Failed to create product"})
		return
	}

	userID := CurrentUserID(c)
	product, err := h.useCase.CreateProduct(c.Request.Context(), userID, form, image)
	if err != nil {
		h.log.Errorf("Create product pipeline failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"message": err.Error()})
		return
	}

	h.log.Infof("Product created successfully: ID %s, Name %s", product.ID, product.Name)
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// formImage reads the optional "image" form file into memory. A missing
// file is not an error here; required-ness is the pipeline's call.
func formImage(c *gin.Context) (*domain.UploadedImage, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &domain.UploadedImage{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Data:        data,
	}, nil
}

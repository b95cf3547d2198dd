package delivery

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront_service/internal/domain"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

func mapErrorToStatus(err error) int {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		return http.StatusBadGateway
	}
	if errors.Is(err, domain.ErrProductNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, domain.ErrUnauthenticated) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, domain.ErrInvalidImageRef) {
		return http.StatusBadRequest
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "does not exist") || strings.Contains(errMsg, "constraint violation") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

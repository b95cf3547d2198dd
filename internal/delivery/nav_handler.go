package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type NavLink struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

var publicLinks = []NavLink{
	{Href: "/", Label: "home"},
	{Href: "/products", Label: "products"},
	{Href: "/products/featured", Label: "featured"},
}

// NavHandler serves the navigation links. The admin dashboard link is
// gated behind the configured admin-identity marker.
type NavHandler struct {
	adminUserID string
	log         *logrus.Logger
}

func NewNavHandler(adminUserID string, logger *logrus.Logger) *NavHandler {
	return &NavHandler{
		adminUserID: adminUserID,
		log:         logger,
	}
}

func (h *NavHandler) RegisterRoutes(router gin.IRouter, optionalAuth gin.HandlerFunc) {
	router.GET("/navigation", optionalAuth, h.Navigation)
}

func (h *NavHandler) Navigation(c *gin.Context) {
	links := make([]NavLink, len(publicLinks))
	copy(links, publicLinks)

	userID := CurrentUserID(c)
	if userID != "" && h.adminUserID != "" && userID == h.adminUserID {
		links = append(links, NavLink{Href: "/admin/products", Label: "dashboard"})
	}

	SuccessResponse(c, http.StatusOK, "Navigation links retrieved successfully", links)
}

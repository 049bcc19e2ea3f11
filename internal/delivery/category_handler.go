package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog_service/internal/domain"
)

// CategoryHandler exposes the fixed category allow-list. Categories are an
// enumerated value set, not a stored resource, so the surface is read-only.
type CategoryHandler struct {
	log *logrus.Logger
}

func NewCategoryHandler(logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{log: logger}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/categorias", h.ListCategories)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories := domain.AllowedCategories()
	h.log.Infof("Retrieved %d allowed categories", len(categories))
	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}

package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"
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

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/productos")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.PUT("/:id", h.ReplaceProduct)
		products.PATCH("/:id", h.PatchProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

// productRequest is the create/replace body. Price is bound as a decimal so
// values like 2.005 keep their exact written form.
type productRequest struct {
	Name       string          `json:"nombre"`
	Price      decimal.Decimal `json:"precio"`
	Categories []string        `json:"categorias"`
}

func (r productRequest) toCandidate() domain.ProductCandidate {
	return domain.ProductCandidate{
		Name:       r.Name,
		Price:      r.Price,
		Categories: r.Categories,
	}
}

// productPatchRequest is the partial-update body; nil fields were absent.
type productPatchRequest struct {
	Name       *string          `json:"nombre"`
	Price      *decimal.Decimal `json:"precio"`
	Categories *[]string        `json:"categorias"`
}

func (r productPatchRequest) toPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:       r.Name,
		Price:      r.Price,
		Categories: r.Categories,
	}
}

// productPage is the list payload: the page plus the pre-pagination total.
type productPage struct {
	Total int              `json:"total"`
	Items []domain.Product `json:"items"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.useCase.CreateProduct(req.toCandidate())
	if err != nil {
		h.log.Warnf("Failed to create product '%s': %v", req.Name, err)
		DomainErrorResponse(c, err, "Failed to create product")
		return
	}

	h.log.Infof("Product created successfully: ID %s, Name %s", created.ID, created.Name)
	SuccessResponse(c, http.StatusCreated, "Product created successfully", created)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %s: %v", id, err)
		DomainErrorResponse(c, err, "Failed to retrieve product")
		return
	}

	h.log.Infof("Product retrieved successfully: ID %s", id)
	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) ReplaceProduct(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for replace product ID %s: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.useCase.ReplaceProduct(id, req.toCandidate())
	if err != nil {
		h.log.Warnf("Failed to replace product ID %s: %v", id, err)
		DomainErrorResponse(c, err, "Failed to replace product")
		return
	}

	h.log.Infof("Product replaced successfully: ID %s", updated.ID)
	SuccessResponse(c, http.StatusOK, "Product replaced successfully", updated)
}

func (h *ProductHandler) PatchProduct(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req productPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for patch product ID %s: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patch := req.toPatch()
	if patch.IsEmpty() {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: no fields provided for update")
		return
	}

	updated, err := h.useCase.PatchProduct(id, patch)
	if err != nil {
		h.log.Warnf("Failed to patch product ID %s: %v", id, err)
		DomainErrorResponse(c, err, "Failed to update product")
		return
	}

	h.log.Infof("Product updated successfully: ID %s", updated.ID)
	SuccessResponse(c, http.StatusOK, "Product updated successfully", updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteProduct(id); err != nil {
		h.log.Warnf("Failed to delete product ID %s: %v", id, err)
		DomainErrorResponse(c, err, "Failed to delete product")
		return
	}

	h.log.Infof("Product deleted successfully: ID %s", id)
	SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := domain.ListFilter{}

	if q := c.Query("q"); q != "" {
		if len([]rune(q)) > 80 {
			h.log.Warnf("Invalid q parameter, longer than 80 characters")
			ErrorResponse(c, http.StatusBadRequest, "Invalid q parameter: must be 1-80 characters")
			return
		}
		filter.Query = q
	}
	filter.Category = c.Query("categoria")

	minPrice, ok := h.parsePriceBound(c, "min_precio")
	if !ok {
		return
	}
	maxPrice, ok := h.parsePriceBound(c, "max_precio")
	if !ok {
		return
	}
	filter.MinPrice = minPrice
	filter.MaxPrice = maxPrice

	limitStr := c.DefaultQuery("limit", "10")
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		h.log.Warnf("Invalid limit parameter '%s', using default 10", limitStr)
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		h.log.Warnf("Invalid offset parameter '%s', using default 0", offsetStr)
		offset = 0
	}

	filter.Limit = limit
	filter.Offset = offset

	items, total, err := h.useCase.ListProducts(filter)
	if err != nil {
		h.log.Warnf("Failed to list products: %v", err)
		DomainErrorResponse(c, err, "Failed to retrieve products")
		return
	}

	h.log.Infof("Retrieved %d of %d products", len(items), total)
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", productPage{Total: total, Items: items})
}

func (h *ProductHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return uuid.UUID{}, false
	}
	return id, true
}

func (h *ProductHandler) parsePriceBound(c *gin.Context, name string) (*decimal.Decimal, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := decimal.NewFromString(raw)
	if err != nil || value.LessThanOrEqual(decimal.Zero) {
		h.log.Warnf("Invalid %s parameter: %s", name, raw)
		ErrorResponse(c, http.StatusBadRequest, "Invalid "+name+" parameter: must be a decimal greater than 0")
		return nil, false
	}
	return &value, true
}

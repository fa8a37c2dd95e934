package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/api"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/interfaces/http/dto"
)

// CatalogAPI is the backend surface the catalog handler depends on
type CatalogAPI interface {
	ListProducts(ctx context.Context, query api.ProductQuery) (*api.ProductList, error)
	GetProduct(ctx context.Context, id string) (*api.Product, error)
	ListCategories(ctx context.Context) ([]api.Category, error)
}

// CatalogHandler proxies catalog reads to the commerce backend
type CatalogHandler struct {
	BaseHandler
	catalog CatalogAPI
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog CatalogAPI) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:id", h.GetProduct)
	rg.GET("/categories", h.ListCategories)
}

// ListProducts returns a filtered, paginated product listing
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	list, err := h.catalog.ListProducts(c.Request.Context(), api.ProductQuery{
		Search:     req.Search,
		CategoryID: req.Category,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list.Products, list.Total, list.Page, list.PageSize)
}

// GetProduct returns a single product by ID
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ListCategories returns all categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

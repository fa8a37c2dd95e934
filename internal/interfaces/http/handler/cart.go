package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	cartapp "github.com/BestOfFomer/FormerMobilya-sub001/internal/application/cart"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/cart"
)

// CartHandler handles cart state requests
type CartHandler struct {
	BaseHandler
	carts *cartapp.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cartapp.Store) *CartHandler {
	return &CartHandler{carts: carts}
}

// RegisterRoutes registers the cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/cart")
	{
		group.GET("", h.Get)
		group.POST("/items", h.AddItem)
		group.PUT("/items", h.UpdateQuantity)
		group.DELETE("/items", h.RemoveItem)
		group.DELETE("", h.Clear)
		group.POST("/sheet/open", h.OpenSheet)
		group.POST("/sheet/close", h.CloseSheet)
	}
}

// AddItemRequest is the add-to-cart payload
type AddItemRequest struct {
	ProductID    string          `json:"product_id" binding:"required"`
	VariantID    string          `json:"variant_id"`
	ProductName  string          `json:"product_name" binding:"required"`
	ProductSlug  string          `json:"product_slug"`
	ProductImage string          `json:"product_image"`
	VariantName  string          `json:"variant_name"`
	VariantSKU   string          `json:"variant_sku"`
	Quantity     int             `json:"quantity" binding:"required"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
}

// UpdateQuantityRequest sets a line's quantity verbatim
type UpdateQuantityRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// RemoveItemRequest identifies the line to remove
type RemoveItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id"`
}

// CartView is the cart state returned to the UI
type CartView struct {
	Items     []cart.LineItem `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ItemCount int             `json:"item_count"`
	SheetOpen bool            `json:"sheet_open"`
}

func (h *CartHandler) view() CartView {
	return CartView{
		Items:     h.carts.Items(),
		Subtotal:  h.carts.Subtotal(),
		ItemCount: h.carts.ItemCount(),
		SheetOpen: h.carts.SheetOpen(),
	}
}

// Get returns the current cart
func (h *CartHandler) Get(c *gin.Context) {
	h.Success(c, h.view())
}

// AddItem adds a product to the cart, merging duplicate lines
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	input := cart.NewItemInput{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Product: cart.ProductSnapshot{
			Name:     req.ProductName,
			Slug:     req.ProductSlug,
			ImageURL: req.ProductImage,
		},
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	}
	if req.VariantID != "" {
		input.Variant = &cart.VariantSnapshot{Name: req.VariantName, SKU: req.VariantSKU}
	}

	if _, err := h.carts.AddItem(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.view())
}

// UpdateQuantity sets a line's quantity verbatim
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	h.carts.UpdateQuantity(c.Request.Context(), req.ProductID, req.VariantID, req.Quantity)
	h.Success(c, h.view())
}

// RemoveItem removes a line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	h.carts.RemoveItem(c.Request.Context(), req.ProductID, req.VariantID)
	h.Success(c, h.view())
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.carts.Clear(c.Request.Context())
	h.Success(c, h.view())
}

// OpenSheet shows the mini-cart sheet
func (h *CartHandler) OpenSheet(c *gin.Context) {
	h.carts.OpenSheet(c.Request.Context())
	h.Success(c, h.view())
}

// CloseSheet hides the mini-cart sheet
func (h *CartHandler) CloseSheet(c *gin.Context) {
	h.carts.CloseSheet(c.Request.Context())
	h.Success(c, h.view())
}

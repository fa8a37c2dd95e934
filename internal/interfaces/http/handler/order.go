package handler

import (
	"github.com/gin-gonic/gin"

	orderapp "github.com/BestOfFomer/FormerMobilya-sub001/internal/application/order"
)

// OrderHandler handles order placement requests
type OrderHandler struct {
	BaseHandler
	orders *orderapp.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *orderapp.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// RegisterRoutes registers the order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.Place)
}

// Place submits the current cart and checkout draft as an order
func (h *OrderHandler) Place(c *gin.Context) {
	result, err := h.orders.Place(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

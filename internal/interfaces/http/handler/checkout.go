package handler

import (
	"github.com/gin-gonic/gin"

	checkoutapp "github.com/BestOfFomer/FormerMobilya-sub001/internal/application/checkout"
	orderapp "github.com/BestOfFomer/FormerMobilya-sub001/internal/application/order"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/checkout"
)

// CheckoutHandler handles checkout draft requests
type CheckoutHandler struct {
	BaseHandler
	drafts *checkoutapp.Store
	orders *orderapp.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(drafts *checkoutapp.Store, orders *orderapp.Service) *CheckoutHandler {
	return &CheckoutHandler{drafts: drafts, orders: orders}
}

// RegisterRoutes registers the checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/checkout")
	{
		group.GET("", h.Get)
		group.PUT("/contact", h.SetContact)
		group.PUT("/address", h.SetAddress)
		group.PUT("/payment", h.SetPayment)
		group.DELETE("", h.Clear)
	}
}

// ContactRequest carries the checkout contact fields
type ContactRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// AddressRequest carries the shipping address fields
type AddressRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country" binding:"required"`
}

// PaymentRequest selects the payment method
type PaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

// CheckoutView is the draft plus the current totals
type CheckoutView struct {
	Draft  checkout.Draft  `json:"draft"`
	Totals orderapp.Totals `json:"totals"`
}

func (h *CheckoutHandler) view() CheckoutView {
	return CheckoutView{
		Draft:  h.drafts.Draft(),
		Totals: h.orders.Totals(),
	}
}

// Get returns the current draft and totals
func (h *CheckoutHandler) Get(c *gin.Context) {
	h.Success(c, h.view())
}

// SetContact sets the contact fields
func (h *CheckoutHandler) SetContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	h.drafts.SetContactInfo(c.Request.Context(), req.Email, req.Phone)
	h.Success(c, h.view())
}

// SetAddress replaces the shipping address
func (h *CheckoutHandler) SetAddress(c *gin.Context) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	h.drafts.SetShippingAddress(c.Request.Context(), checkout.ShippingAddress{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	h.Success(c, h.view())
}

// SetPayment selects the payment method
func (h *CheckoutHandler) SetPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	if err := h.drafts.SetPaymentMethod(c.Request.Context(), checkout.PaymentMethod(req.Method)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.view())
}

// Clear resets the draft to its defaults
func (h *CheckoutHandler) Clear(c *gin.Context) {
	h.drafts.Clear(c.Request.Context())
	h.Success(c, h.view())
}

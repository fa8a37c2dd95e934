// Package order implements order placement: it assembles the submission
// from the cart and the checkout draft, sends it to the backend, and on
// success clears both stores.
package order

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	cartapp "github.com/BestOfFomer/FormerMobilya-sub001/internal/application/cart"
	checkoutapp "github.com/BestOfFomer/FormerMobilya-sub001/internal/application/checkout"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/checkout"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/shared"
	"github.com/BestOfFomer/FormerMobilya-sub001/internal/infrastructure/api"
)

// OrdersAPI is the backend surface order placement depends on
type OrdersAPI interface {
	PlaceOrder(ctx context.Context, req api.OrderRequest) (*api.OrderResult, error)
}

// Totals is the price breakdown shown on the checkout summary
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Service places orders from the current cart and checkout draft
type Service struct {
	cart     *cartapp.Store
	checkout *checkoutapp.Store
	orders   OrdersAPI
	policy   checkout.ShippingPolicy
	logger   *zap.Logger
}

// NewService creates an order service
func NewService(cart *cartapp.Store, checkoutStore *checkoutapp.Store, orders OrdersAPI, policy checkout.ShippingPolicy, logger *zap.Logger) *Service {
	return &Service{
		cart:     cart,
		checkout: checkoutStore,
		orders:   orders,
		policy:   policy,
		logger:   logger,
	}
}

// Totals returns the current price breakdown
func (s *Service) Totals() Totals {
	subtotal := s.cart.Subtotal()
	shipping := s.policy.CostFor(subtotal)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}

// Place submits the current cart with the checkout draft's contact,
// address and payment details. An empty cart or an unselected payment
// method is rejected locally without a network call. On success the
// cart and the checkout draft are both cleared.
func (s *Service) Place(ctx context.Context) (*api.OrderResult, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, shared.ErrEmptyCart
	}
	draft := s.checkout.Draft()
	if draft.PaymentMethod == checkout.PaymentMethodUnset {
		return nil, shared.ErrInvalidPaymentMethod
	}

	subtotal := s.cart.Subtotal()
	req := api.OrderRequest{
		Email:         draft.Email,
		Phone:         draft.Phone,
		FirstName:     draft.Shipping.FirstName,
		LastName:      draft.Shipping.LastName,
		Address:       draft.Shipping.Address,
		City:          draft.Shipping.City,
		PostalCode:    draft.Shipping.PostalCode,
		Country:       draft.Shipping.Country,
		PaymentMethod: draft.PaymentMethod.String(),
		Items:         make([]api.OrderItem, 0, len(items)),
		ShippingCost:  s.policy.CostFor(subtotal),
	}
	for _, item := range items {
		req.Items = append(req.Items, api.OrderItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	result, err := s.orders.PlaceOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", result.OrderID),
		zap.String("number", result.Number),
		zap.Int("items", len(items)))

	s.cart.Clear(ctx)
	s.checkout.Clear(ctx)
	return result, nil
}

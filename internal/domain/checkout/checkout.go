package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/shared"
)

// DefaultCountry is the shipping country preselected for new drafts
const DefaultCountry = "Türkiye"

// PaymentMethod enumerates the accepted payment options.
// The empty string is the unset sentinel.
type PaymentMethod string

const (
	PaymentMethodUnset        PaymentMethod = ""
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid checks if the method is one of the accepted values or unset
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodUnset, PaymentMethodCreditCard, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// ShippingAddress is the destination entered during checkout
type ShippingAddress struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Draft is the transient checkout-flow input, filled incrementally across
// the checkout steps. The stores perform no validation beyond the payment
// method enum; forms validate before writing here.
type Draft struct {
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Shipping      ShippingAddress `json:"shipping"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
}

// NewDraft creates a draft with defaults: empty fields, the default
// country, and the unset payment method.
func NewDraft() *Draft {
	return &Draft{
		Shipping: ShippingAddress{Country: DefaultCountry},
	}
}

// SetContactInfo replaces the contact fields only
func (d *Draft) SetContactInfo(email, phone string) {
	d.Email = email
	d.Phone = phone
}

// SetShippingAddress replaces the shipping address only
func (d *Draft) SetShippingAddress(addr ShippingAddress) {
	d.Shipping = addr
}

// SetPaymentMethod replaces the payment method. Anything other than the
// two accepted values or the unset sentinel is rejected.
func (d *Draft) SetPaymentMethod(method PaymentMethod) error {
	if !method.IsValid() {
		return shared.ErrInvalidPaymentMethod
	}
	d.PaymentMethod = method
	return nil
}

// Reset restores every field to its default
func (d *Draft) Reset() {
	*d = *NewDraft()
}

// ShippingPolicy computes the shipping cost for an order subtotal:
// a flat rate, waived above the free-shipping threshold.
type ShippingPolicy struct {
	FlatRate      decimal.Decimal
	FreeThreshold decimal.Decimal
}

// DefaultShippingPolicy returns the storefront's standard rates
func DefaultShippingPolicy() ShippingPolicy {
	return ShippingPolicy{
		FlatRate:      decimal.NewFromFloat(299.90),
		FreeThreshold: decimal.NewFromInt(7500),
	}
}

// CostFor returns the shipping cost for the given subtotal
func (p ShippingPolicy) CostFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(p.FreeThreshold) {
		return decimal.Zero
	}
	return p.FlatRate
}

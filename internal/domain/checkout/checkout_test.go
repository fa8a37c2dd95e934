package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/shared"
)

func TestPaymentMethod_IsValid(t *testing.T) {
	tests := []struct {
		method  PaymentMethod
		isValid bool
	}{
		{PaymentMethodUnset, true},
		{PaymentMethodCreditCard, true},
		{PaymentMethodBankTransfer, true},
		{PaymentMethod("paypal"), false},
		{PaymentMethod("CREDIT_CARD"), false},
	}

	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.method.IsValid())
		})
	}
}

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()
	assert.Empty(t, d.Email)
	assert.Empty(t, d.Phone)
	assert.Empty(t, d.Shipping.FirstName)
	assert.Empty(t, d.Shipping.City)
	assert.Equal(t, DefaultCountry, d.Shipping.Country)
	assert.Equal(t, PaymentMethodUnset, d.PaymentMethod)
}

func TestDraft_SetContactInfo_LeavesOthersUntouched(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetPaymentMethod(PaymentMethodCreditCard))

	d.SetContactInfo("ali@example.com", "+90 532 111 22 33")

	assert.Equal(t, "ali@example.com", d.Email)
	assert.Equal(t, "+90 532 111 22 33", d.Phone)
	assert.Equal(t, PaymentMethodCreditCard, d.PaymentMethod)
	assert.Equal(t, DefaultCountry, d.Shipping.Country)
}

func TestDraft_SetShippingAddress(t *testing.T) {
	d := NewDraft()
	d.SetContactInfo("ali@example.com", "")

	addr := ShippingAddress{
		FirstName:  "Ali",
		LastName:   "Demir",
		Address:    "Atatürk Cad. No:5",
		City:       "İzmir",
		PostalCode: "35000",
		Country:    "Türkiye",
	}
	d.SetShippingAddress(addr)

	assert.Equal(t, addr, d.Shipping)
	assert.Equal(t, "ali@example.com", d.Email)
}

func TestDraft_SetPaymentMethod(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.SetPaymentMethod(PaymentMethodBankTransfer))
	assert.Equal(t, PaymentMethodBankTransfer, d.PaymentMethod)

	err := d.SetPaymentMethod(PaymentMethod("cash_on_delivery"))
	require.ErrorIs(t, err, shared.ErrInvalidPaymentMethod)
	assert.Equal(t, PaymentMethodBankTransfer, d.PaymentMethod, "rejected method must not overwrite")

	require.NoError(t, d.SetPaymentMethod(PaymentMethodUnset))
	assert.Equal(t, PaymentMethodUnset, d.PaymentMethod)
}

func TestDraft_Reset(t *testing.T) {
	d := NewDraft()
	d.SetContactInfo("ali@example.com", "+90 532 111 22 33")
	d.SetShippingAddress(ShippingAddress{FirstName: "Ali", City: "İzmir", Country: "Germany"})
	require.NoError(t, d.SetPaymentMethod(PaymentMethodCreditCard))

	d.Reset()

	assert.Equal(t, NewDraft(), d)
	assert.Equal(t, DefaultCountry, d.Shipping.Country)
}

func TestShippingPolicy_CostFor(t *testing.T) {
	policy := ShippingPolicy{
		FlatRate:      decimal.NewFromFloat(299.90),
		FreeThreshold: decimal.NewFromInt(7500),
	}

	tests := []struct {
		name     string
		subtotal decimal.Decimal
		want     decimal.Decimal
	}{
		{"below threshold", decimal.NewFromInt(100), decimal.NewFromFloat(299.90)},
		{"just below threshold", decimal.NewFromFloat(7499.99), decimal.NewFromFloat(299.90)},
		{"at threshold", decimal.NewFromInt(7500), decimal.Zero},
		{"above threshold", decimal.NewFromInt(20000), decimal.Zero},
		{"zero subtotal", decimal.Zero, decimal.NewFromFloat(299.90)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.CostFor(tt.subtotal)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

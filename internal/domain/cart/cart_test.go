package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/shared"
)

func addTestItem(t *testing.T, c *Cart, productID, variantID string, qty int, price float64) *LineItem {
	t.Helper()
	input := NewItemInput{
		ProductID: productID,
		VariantID: variantID,
		Product:   ProductSnapshot{Name: "Test Product", Slug: "test-product"},
		Quantity:  qty,
		UnitPrice: decimal.NewFromFloat(price),
	}
	if variantID != "" {
		input.Variant = &VariantSnapshot{Name: "Variant " + variantID, SKU: "SKU-" + variantID}
	}
	item, err := c.AddItem(input)
	require.NoError(t, err)
	return item
}

func TestCart_AddItem_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    NewItemInput
		wantCode string
	}{
		{
			name:     "empty product ID",
			input:    NewItemInput{Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
			wantCode: "INVALID_PRODUCT",
		},
		{
			name:     "zero quantity",
			input:    NewItemInput{ProductID: "p1", Quantity: 0, UnitPrice: decimal.NewFromInt(10)},
			wantCode: "INVALID_QUANTITY",
		},
		{
			name:     "negative quantity",
			input:    NewItemInput{ProductID: "p1", Quantity: -2, UnitPrice: decimal.NewFromInt(10)},
			wantCode: "INVALID_QUANTITY",
		},
		{
			name:     "negative price",
			input:    NewItemInput{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromInt(-1)},
			wantCode: "INVALID_PRICE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			_, err := c.AddItem(tt.input)
			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
			assert.Empty(t, c.Items)
		})
	}
}

func TestCart_AddItem_MergesSamePair(t *testing.T) {
	c := New()
	first := addTestItem(t, c, "A", "v1", 2, 100)
	second := addTestItem(t, c, "A", "v1", 3, 100)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, first.ID, second.ID)
}

func TestCart_AddItem_DistinctVariantsDistinctEntries(t *testing.T) {
	c := New()
	addTestItem(t, c, "A", "", 1, 100)
	addTestItem(t, c, "A", "v1", 1, 120)

	require.Len(t, c.Items, 2)
	assert.NotEqual(t, c.Items[0].ID, c.Items[1].ID)
}

func TestCart_AddItem_OpensSheet(t *testing.T) {
	c := New()
	assert.False(t, c.SheetOpen)
	addTestItem(t, c, "A", "", 1, 10)
	assert.True(t, c.SheetOpen)
}

func TestCart_AddItem_GeneratesUniqueIDs(t *testing.T) {
	c := New()
	a := addTestItem(t, c, "A", "", 1, 10)
	b := addTestItem(t, c, "B", "", 1, 20)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCart_RemoveItem(t *testing.T) {
	c := New()
	addTestItem(t, c, "A", "v1", 2, 100)
	addTestItem(t, c, "B", "", 1, 50)

	c.RemoveItem("A", "v1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "B", c.Items[0].ProductID)
}

func TestCart_RemoveItem_NoMatchIsNoOp(t *testing.T) {
	c := New()
	addTestItem(t, c, "A", "", 2, 100)
	before := make([]LineItem, len(c.Items))
	copy(before, c.Items)

	c.RemoveItem("A", "v1")

	require.Len(t, c.Items, 1)
	assert.Equal(t, before, c.Items)
}

func TestCart_RemoveItem_OnlyMatchingVariant(t *testing.T) {
	c := New()
	addTestItem(t, c, "A", "", 1, 100)
	addTestItem(t, c, "A", "v1", 1, 120)

	c.RemoveItem("A", "")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "v1", c.Items[0].VariantID)
}

func TestCart_UpdateQuantity_Verbatim(t *testing.T) {
	tests := []struct {
		name string
		qty  int
	}{
		{"positive", 7},
		{"zero", 0},
		{"negative", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			addTestItem(t, c, "A", "v1", 2, 100)
			c.UpdateQuantity("A", "v1", tt.qty)
			assert.Equal(t, tt.qty, c.Items[0].Quantity)
		})
	}
}

func TestCart_UpdateQuantity_NoMatchIsNoOp(t *testing.T) {
	c := New()
	addTestItem(t, c, "A", "", 2, 100)
	c.UpdateQuantity("A", "v1", 9)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestCart_Subtotal(t *testing.T) {
	c := New()
	assert.True(t, c.Subtotal().IsZero())

	addTestItem(t, c, "A", "v1", 2, 100)
	addTestItem(t, c, "B", "", 1, 50)
	assert.True(t, c.Subtotal().Equal(decimal.NewFromInt(250)), "got %s", c.Subtotal())

	c.UpdateQuantity("A", "v1", 5)
	assert.True(t, c.Subtotal().Equal(decimal.NewFromInt(550)), "got %s", c.Subtotal())

	c.Clear()
	assert.True(t, c.Subtotal().IsZero())
}

func TestCart_ItemCount_SumsQuantities(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.ItemCount())

	addTestItem(t, c, "A", "v1", 2, 100)
	assert.Equal(t, 2, c.ItemCount())

	addTestItem(t, c, "B", "", 1, 50)
	assert.Equal(t, 3, c.ItemCount())

	c.UpdateQuantity("A", "v1", 7)
	assert.Equal(t, 8, c.ItemCount())
}

func TestCart_Clear(t *testing.T) {
	c := New()
	addTestItem(t, c, "A", "", 2, 100)
	c.Clear()
	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.ItemCount())
}

package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/shared"
)

// ProductSnapshot captures the product display info at the time the item
// was added, so the cart stays renderable if the catalog changes.
type ProductSnapshot struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"image_url"`
}

// VariantSnapshot captures the selected variant display info
type VariantSnapshot struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// LineItem represents one (product, variant) selection in the cart
type LineItem struct {
	ID        uuid.UUID        `json:"id"`
	ProductID string           `json:"product_id"`
	VariantID string           `json:"variant_id,omitempty"` // empty = base product
	Product   ProductSnapshot  `json:"product"`
	Variant   *VariantSnapshot `json:"variant,omitempty"`
	Quantity  int              `json:"quantity"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
}

// Amount returns UnitPrice * Quantity for this line
func (i *LineItem) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// matches reports whether this line holds the given (product, variant) pair
func (i *LineItem) matches(productID, variantID string) bool {
	return i.ProductID == productID && i.VariantID == variantID
}

// NewItemInput carries the fields needed to add a line item
type NewItemInput struct {
	ProductID string
	VariantID string
	Product   ProductSnapshot
	Variant   *VariantSnapshot
	Quantity  int
	UnitPrice decimal.Decimal
}

// Cart is the in-progress shopping cart. Two entries with the same
// (ProductID, VariantID) pair never coexist: adding a matching item
// increments the existing entry's quantity instead of appending.
type Cart struct {
	Items     []LineItem `json:"items"`
	SheetOpen bool       `json:"sheet_open"`
}

// New creates an empty cart
func New() *Cart {
	return &Cart{Items: []LineItem{}}
}

// AddItem merges the input into an existing entry with the same
// (product, variant) pair, or appends a new entry with a fresh ID.
// The cart sheet is opened so the UI can present the result.
func (c *Cart) AddItem(input NewItemInput) (*LineItem, error) {
	if input.ProductID == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if input.Quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if input.UnitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	c.SheetOpen = true

	for idx := range c.Items {
		if c.Items[idx].matches(input.ProductID, input.VariantID) {
			c.Items[idx].Quantity += input.Quantity
			return &c.Items[idx], nil
		}
	}

	item := LineItem{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		VariantID: input.VariantID,
		Product:   input.Product,
		Variant:   input.Variant,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
	}
	c.Items = append(c.Items, item)
	return &c.Items[len(c.Items)-1], nil
}

// RemoveItem deletes every entry matching the (product, variant) pair.
// No-op when nothing matches.
func (c *Cart) RemoveItem(productID, variantID string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if !item.matches(productID, variantID) {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// UpdateQuantity sets the matching entry's quantity verbatim. Zero and
// negative values are stored as given; clamping is a presentation-layer
// responsibility. No-op when nothing matches.
func (c *Cart) UpdateQuantity(productID, variantID string, quantity int) {
	for idx := range c.Items {
		if c.Items[idx].matches(productID, variantID) {
			c.Items[idx].Quantity = quantity
			return
		}
	}
}

// Subtotal returns the sum of UnitPrice * Quantity over all items.
// Shipping is not included.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for idx := range c.Items {
		total = total.Add(c.Items[idx].Amount())
	}
	return total
}

// ItemCount returns the total quantity across all line items, the
// number the cart badge shows.
func (c *Cart) ItemCount() int {
	count := 0
	for idx := range c.Items {
		count += c.Items[idx].Quantity
	}
	return count
}

// Clear empties the item list. The sheet flag is left as-is.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
}

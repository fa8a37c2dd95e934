package api

import (
	"github.com/shopspring/decimal"

	"github.com/BestOfFomer/FormerMobilya-sub001/internal/domain/session"
)

// AuthResult is returned by login, register and refresh flows
type AuthResult struct {
	User         *session.User `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}

// RegisterRequest is the self-registration payload. The backend assigns
// the customer role.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries the editable identity fields. Nil fields are
// left unchanged by the backend.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// ProductVariant is a purchasable variation of a product
type ProductVariant struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// Product is a catalog entry
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	ImageURL    string           `json:"image_url"`
	CategoryID  string           `json:"category_id"`
	Variants    []ProductVariant `json:"variants,omitempty"`
}

// Category groups catalog entries
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductQuery filters and paginates catalog listings
type ProductQuery struct {
	Search     string
	CategoryID string
	Page       int
	PageSize   int
}

// ProductList is a paginated catalog listing
type ProductList struct {
	Products []Product `json:"products"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

// OrderItem is one line of an order submission
type OrderItem struct {
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderRequest is the order submission payload
type OrderRequest struct {
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	PostalCode    string          `json:"postal_code"`
	Country       string          `json:"country"`
	PaymentMethod string          `json:"payment_method"`
	Items         []OrderItem     `json:"items"`
	ShippingCost  decimal.Decimal `json:"shipping_cost"`
}

// OrderResult is returned by a successful order submission
type OrderResult struct {
	OrderID string `json:"order_id"`
	Number  string `json:"number"`
}

// UploadResult is returned by a successful image upload
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

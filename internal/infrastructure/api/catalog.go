package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListProducts retrieves a filtered, paginated catalog listing
func (c *Client) ListProducts(ctx context.Context, query ProductQuery) (*ProductList, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.CategoryID != "" {
		params.Set("category_id", query.CategoryID)
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(query.PageSize))
	}

	path := "/products"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result ProductList
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProduct retrieves a single product by ID
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var result Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListCategories retrieves all catalog categories
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var result struct {
		Categories []Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &result); err != nil {
		return nil, err
	}
	return result.Categories, nil
}

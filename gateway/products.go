package gateway

import (
	"context"
	"net/http"

	"inventario-admin/models"
)

// FetchProducts returns the full product list from GET /Products
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.doJSON(ctx, "fetch products", http.MethodGet, "/Products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct creates a product via POST /Products. The created record
// is discarded; callers re-fetch the list to pick up the assigned id.
func (c *Client) CreateProduct(ctx context.Context, draft models.ProductDraft) error {
	return c.doJSON(ctx, "create product", http.MethodPost, "/Products", draft, nil)
}

// UpdateProduct replaces the full record via PUT /Products
func (c *Client) UpdateProduct(ctx context.Context, product models.Product) error {
	return c.doJSON(ctx, "update product", http.MethodPut, "/Products", product, nil)
}

// DeleteProduct removes a product via DELETE /Products. The backend takes
// the id in the request body, not the path.
func (c *Client) DeleteProduct(ctx context.Context, productID int) error {
	return c.doJSON(ctx, "delete product", http.MethodDelete, "/Products", models.DeleteProductRequest{ProductID: productID}, nil)
}

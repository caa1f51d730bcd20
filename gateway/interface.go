package gateway

import (
	"context"

	"inventario-admin/models"
)

// CatalogAPI defines the contract for catalog operations against the
// inventory backend
type CatalogAPI interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, draft models.ProductDraft) error
	UpdateProduct(ctx context.Context, product models.Product) error
	DeleteProduct(ctx context.Context, productID int) error
}

// OrderAPI defines the contract for order submission against the
// inventory backend
type OrderAPI interface {
	PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderOutcome, error)
}

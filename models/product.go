package models

import "github.com/shopspring/decimal"

// Product represents a product as returned by the inventory API.
// The id is assigned by the backend and never changes after creation.
type Product struct {
	ProductID   int             `json:"productId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// ProductDraft represents the request body for creating a product.
// The backend assigns the id; the caller re-fetches the full list afterwards.
// Example: {"name": "Camiseta", "description": "Talla M", "price": 25.50, "stock": 10}
type ProductDraft struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// DeleteProductRequest represents the request body for deleting a product
type DeleteProductRequest struct {
	ProductID int `json:"productId"`
}

// TokenRequest represents the request body for obtaining an API token
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse represents the response from the token endpoint
type TokenResponse struct {
	Token string `json:"token"`
}

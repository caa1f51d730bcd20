package models

import "github.com/shopspring/decimal"

// OrderLine represents one line of an order cart. The product is copied
// by value when the line is created, so later catalog refreshes do not
// change the price or stock recorded here.
type OrderLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price * quantity for this line.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderDetail represents a (productId, quantity) pair in the order payload
type OrderDetail struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// OrderRequest represents the request body for placing an order.
// Example: {"clientName": "Ana", "orderDetails": [{"productId": 1, "quantity": 2}]}
type OrderRequest struct {
	ClientName   string        `json:"clientName"`
	OrderDetails []OrderDetail `json:"orderDetails"`
}

// OrderResponse represents the raw response from the order endpoint.
// The message text is the success/failure discriminator; the gateway
// translates it into an OrderOutcome so nothing above the gateway ever
// inspects the wording.
type OrderResponse struct {
	Message string          `json:"message"`
	OrderID int             `json:"orderId"`
	Total   decimal.Decimal `json:"total"`
}

// OrderStatus classifies the backend's answer to an order submission
type OrderStatus int

const (
	// OrderCreated is the only status that allows the cart to be cleared
	OrderCreated OrderStatus = iota
	// OrderProductNotFound means the backend rejected an unknown product
	OrderProductNotFound
	// OrderStockUnavailable means the backend rejected the requested quantity
	OrderStockUnavailable
	// OrderRejected covers any response the gateway could not classify
	OrderRejected
)

// OrderOutcome is the structured result of an order submission, built by
// the gateway from the backend's free-text message.
type OrderOutcome struct {
	Status  OrderStatus
	Message string
	OrderID int
	Total   decimal.Decimal
}

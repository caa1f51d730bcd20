package gateway

import (
	"context"
	"net/http"
	"strings"

	"inventario-admin/models"
)

// Known backend phrases. The order endpoint reports semantic failures
// inside a 200 response, discriminated only by the message wording, so
// these strings are part of the backend contract. They are matched here
// and nowhere else.
const (
	msgOrderCreated      = "Orden creada exitosamente."
	msgProductNotFound   = "no existe"
	msgInsufficientStock = "no tiene suficiente stock"
)

// PlaceOrder submits an order via POST /Order and classifies the backend's
// free-text message into a structured outcome. A transport failure returns
// an error; a semantically rejected order returns a non-nil outcome with
// the corresponding status.
func (c *Client) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderOutcome, error) {
	var resp models.OrderResponse
	if err := c.doJSON(ctx, "place order", http.MethodPost, "/Order", req, &resp); err != nil {
		return nil, err
	}
	return classifyOrderResponse(resp), nil
}

// classifyOrderResponse translates the message wording into an OrderStatus.
// Only the exact success phrase creates an order; anything unrecognized is
// OrderRejected so a wording change on the backend fails safe (cart kept).
func classifyOrderResponse(resp models.OrderResponse) *models.OrderOutcome {
	outcome := &models.OrderOutcome{
		Message: resp.Message,
		OrderID: resp.OrderID,
		Total:   resp.Total,
	}

	switch {
	case resp.Message == msgOrderCreated:
		outcome.Status = models.OrderCreated
	case strings.Contains(resp.Message, msgProductNotFound):
		outcome.Status = models.OrderProductNotFound
	case strings.Contains(resp.Message, msgInsufficientStock):
		outcome.Status = models.OrderStockUnavailable
	default:
		outcome.Status = models.OrderRejected
	}
	return outcome
}

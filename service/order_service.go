package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"inventario-admin/gateway"
	"inventario-admin/models"
	"inventario-admin/session"
)

// Client-side submission errors. When either is returned no network call
// has been made.
var (
	ErrMissingCustomerName = errors.New("customer name is required")
	ErrEmptyOrder          = errors.New("order has no lines")
)

// OrderService builds the order payload from a session's cart and submits
// it through the gateway
type OrderService struct {
	api gateway.OrderAPI
	log logrus.FieldLogger
}

// NewOrderService creates a new OrderService
func NewOrderService(api gateway.OrderAPI, log logrus.FieldLogger) *OrderService {
	return &OrderService{api: api, log: log}
}

// Submit validates the session's order, submits it and applies the
// outcome. The customer name and cart are checked before any network
// call. The cart and name are cleared only when the backend confirms
// creation; on every other path (validation error, transport failure,
// semantic rejection) the session is left untouched so the user can
// retry.
func (s *OrderService) Submit(ctx context.Context, sess *session.Session) (*models.OrderOutcome, error) {
	name := strings.TrimSpace(sess.CustomerName())
	if name == "" {
		return nil, ErrMissingCustomerName
	}

	lines := sess.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	details := make([]models.OrderDetail, len(lines))
	for i, l := range lines {
		details[i] = models.OrderDetail{ProductID: l.Product.ProductID, Quantity: l.Quantity}
	}

	outcome, err := s.api.PlaceOrder(ctx, models.OrderRequest{ClientName: name, OrderDetails: details})
	if err != nil {
		s.log.WithError(err).Error("❌ No se pudo realizar el pedido")
		return nil, fmt.Errorf("submit order: %w", err)
	}

	if outcome.Status == models.OrderCreated {
		sess.Clear()
		s.log.WithFields(logrus.Fields{
			"orderId": outcome.OrderID,
			"total":   outcome.Total.StringFixed(2),
		}).Info("✅ Orden creada")
	}
	return outcome, nil
}

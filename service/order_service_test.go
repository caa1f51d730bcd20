package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventario-admin/models"
	"inventario-admin/session"
)

// fakeOrderAPI records submissions and returns a scripted outcome
type fakeOrderAPI struct {
	calls    int
	lastReq  models.OrderRequest
	outcome  *models.OrderOutcome
	placeErr error
}

func (f *fakeOrderAPI) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderOutcome, error) {
	f.calls++
	f.lastReq = req
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	return f.outcome, nil
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func sessionWithCart(t *testing.T, name string) *session.Session {
	t.Helper()
	sess := &session.Session{}
	sess.SetCustomerName(name)
	p := models.Product{ProductID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 5}
	require.NoError(t, sess.AddItem(&p, "2"))
	return sess
}

func TestSubmitRequiresCustomerName(t *testing.T) {
	api := &fakeOrderAPI{}
	svc := NewOrderService(api, testLogger())

	for _, name := range []string{"", "   ", "\t"} {
		sess := sessionWithCart(t, name)
		_, err := svc.Submit(context.Background(), sess)
		assert.ErrorIs(t, err, ErrMissingCustomerName, "name %q", name)
		assert.Len(t, sess.Lines(), 1, "cart untouched")
	}
	assert.Zero(t, api.calls, "no network call for client-side failures")
}

func TestSubmitRequiresNonEmptyCart(t *testing.T) {
	api := &fakeOrderAPI{}
	svc := NewOrderService(api, testLogger())

	sess := &session.Session{}
	sess.SetCustomerName("Ana")

	_, err := svc.Submit(context.Background(), sess)
	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Zero(t, api.calls)
}

func TestSubmitSuccessClearsSession(t *testing.T) {
	api := &fakeOrderAPI{outcome: &models.OrderOutcome{
		Status:  models.OrderCreated,
		Message: "Orden creada exitosamente.",
		OrderID: 42,
		Total:   decimal.RequireFromString("19.98"),
	}}
	svc := NewOrderService(api, testLogger())
	sess := sessionWithCart(t, "Ana")

	outcome, err := svc.Submit(context.Background(), sess)
	require.NoError(t, err)
	require.Equal(t, models.OrderCreated, outcome.Status)
	assert.Equal(t, 42, outcome.OrderID)
	assert.Equal(t, "19.98", outcome.Total.StringFixed(2))

	assert.Equal(t, 1, api.calls)
	assert.Equal(t, "Ana", api.lastReq.ClientName)
	require.Len(t, api.lastReq.OrderDetails, 1)
	assert.Equal(t, models.OrderDetail{ProductID: 1, Quantity: 2}, api.lastReq.OrderDetails[0])

	assert.Empty(t, sess.Lines(), "cart cleared on confirmed success")
	assert.Empty(t, sess.CustomerName())
}

func TestSubmitTrimsCustomerName(t *testing.T) {
	api := &fakeOrderAPI{outcome: &models.OrderOutcome{Status: models.OrderCreated}}
	svc := NewOrderService(api, testLogger())
	sess := sessionWithCart(t, "  Ana  ")

	_, err := svc.Submit(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "Ana", api.lastReq.ClientName)
}

func TestSubmitSemanticRejectionKeepsSession(t *testing.T) {
	tests := []struct {
		name    string
		outcome *models.OrderOutcome
	}{
		{"product not found", &models.OrderOutcome{Status: models.OrderProductNotFound, Message: "El producto X no existe."}},
		{"stock unavailable", &models.OrderOutcome{Status: models.OrderStockUnavailable, Message: "El producto Widget no tiene suficiente stock."}},
		{"unrecognized message", &models.OrderOutcome{Status: models.OrderRejected, Message: "algo inesperado"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrderService(&fakeOrderAPI{outcome: tt.outcome}, testLogger())
			sess := sessionWithCart(t, "Ana")

			outcome, err := svc.Submit(context.Background(), sess)
			require.NoError(t, err)
			assert.Equal(t, tt.outcome.Status, outcome.Status)

			assert.Len(t, sess.Lines(), 1, "cart preserved for retry")
			assert.Equal(t, "Ana", sess.CustomerName())
		})
	}
}

func TestSubmitTransportFailureKeepsSession(t *testing.T) {
	svc := NewOrderService(&fakeOrderAPI{placeErr: errors.New("connection refused")}, testLogger())
	sess := sessionWithCart(t, "Ana")

	_, err := svc.Submit(context.Background(), sess)
	require.Error(t, err)
	assert.Len(t, sess.Lines(), 1)
	assert.Equal(t, "Ana", sess.CustomerName())
}
